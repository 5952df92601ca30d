package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/storage"
)

// ErrLoginFailed is returned when the backend rejects the credentials
var ErrLoginFailed = errors.New("login failed")

// Manager drives the auth lifecycle for each browser session.
// It owns the only cross-request mutable state on the client: the
// persisted token keyed by session ID. Identity is never cached; it is
// re-fetched from the backend, so each request observes a wholesale
// replacement, never a partial merge.
type Manager struct {
	gateway *gateway.Client
	tokens  storage.TokenStore
	logger  *slog.Logger
}

// NewManager creates a session manager
func NewManager(gw *gateway.Client, tokens storage.TokenStore, logger *slog.Logger) *Manager {
	return &Manager{
		gateway: gw,
		tokens:  tokens,
		logger:  logger,
	}
}

// Restore resolves the session state for a browser session ID.
// No persisted token yields Anonymous. A persisted token triggers a
// profile fetch; rejection is treated as an invalid or expired token:
// the token is removed and the session silently degrades to Anonymous.
func (m *Manager) Restore(ctx context.Context, sessionID string) Session {
	token, err := m.tokens.GetToken(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, model.ErrTokenNotFound) {
			m.logger.Warn("token lookup failed",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
		}
		return Anonymous()
	}

	identity, err := m.gateway.Profile(ctx, token)
	if err != nil {
		// Invalid or expired token: drop it and fall back to logged-out
		if delErr := m.tokens.DeleteToken(ctx, sessionID); delErr != nil {
			m.logger.Warn("failed to remove rejected token",
				slog.String("session_id", sessionID),
				slog.String("error", delErr.Error()),
			)
		}
		return Anonymous()
	}

	return Authenticated(identity, token)
}

// Login exchanges credentials for a token, persists it, then fetches the
// identity. The profile fetch is sequenced strictly after persistence.
// On any failure no token survives and the caller surfaces the error.
func (m *Manager) Login(ctx context.Context, sessionID, username, password string) (*model.Identity, error) {
	result, err := m.gateway.Login(ctx, username, password)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %s", ErrLoginFailed, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err := m.tokens.SaveToken(ctx, sessionID, result.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	identity, err := m.gateway.Profile(ctx, result.Token)
	if err != nil {
		_ = m.tokens.DeleteToken(ctx, sessionID)
		return nil, fmt.Errorf("%w: profile fetch rejected", ErrLoginFailed)
	}

	return identity, nil
}

// Register creates an account. It does not authenticate; the observed
// pattern is register-then-login with the same credentials.
func (m *Manager) Register(ctx context.Context, username, password string, role model.Role) error {
	return m.gateway.Register(ctx, username, password, role)
}

// Logout removes the persisted token. Idempotent; no backend call.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	return m.tokens.DeleteToken(ctx, sessionID)
}
