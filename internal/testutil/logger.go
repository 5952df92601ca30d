package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Session and web
// tests log restore failures on purpose; this keeps test output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
