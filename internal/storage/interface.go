package storage

import (
	"context"
)

// TokenStore persists bearer tokens keyed by browser session ID.
// This is the durable storage behind the session lifecycle: a missing
// token means logged-out.
type TokenStore interface {
	// SaveToken stores or replaces the token for a session
	SaveToken(ctx context.Context, sessionID, token string) error
	// GetToken returns the token for a session, or model.ErrTokenNotFound
	GetToken(ctx context.Context, sessionID string) (string, error)
	// DeleteToken removes a session's token; deleting an absent token is a no-op
	DeleteToken(ctx context.Context, sessionID string) error
}
