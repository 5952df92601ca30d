package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenNotFound    = errors.New("token not found")

	// Validation errors
	ErrInvalidRole     = errors.New("role must be designer or player")
	ErrEmptyField      = errors.New("required field is empty")
	ErrTooFewOptions   = errors.New("question needs at least two non-empty options")
	ErrInvalidAnswer   = errors.New("correct answer must index one of the options")
	ErrPasswordsDiffer = errors.New("passwords do not match")
)
