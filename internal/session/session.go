// Package session holds the client-side authentication lifecycle: an
// explicit state machine over the persisted bearer token and the identity
// snapshot fetched with it. All hard decisions (token issuance, expiry,
// authorization) belong to the remote backend; this package only caches
// the token and degrades to logged-out when the backend rejects it.
package session

import (
	"github.com/google/uuid"

	"github.com/soalpich/soalpich-web/internal/model"
)

// State names the position in the auth lifecycle
type State int

const (
	// StateInitializing is the pre-restore state: a persisted token may
	// exist but no identity fetch has resolved yet
	StateInitializing State = iota
	// StateAnonymous means no identity and no token
	StateAnonymous
	// StateAuthenticated means a profile fetch succeeded since the last logout
	StateAuthenticated
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a tagged union over the auth lifecycle states.
// Invariant: Identity and Token are both set iff State is StateAuthenticated.
type Session struct {
	State    State
	Identity *model.Identity
	Token    string
}

// Initializing returns the startup session value
func Initializing() Session {
	return Session{State: StateInitializing}
}

// Anonymous returns the logged-out session value
func Anonymous() Session {
	return Session{State: StateAnonymous}
}

// Authenticated returns a session holding an identity and its token
func Authenticated(identity *model.Identity, token string) Session {
	return Session{State: StateAuthenticated, Identity: identity, Token: token}
}

// IsAuthenticated reports whether the session holds an identity
func (s Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// NewSessionID mints an opaque browser session identifier
func NewSessionID() string {
	return uuid.NewString()
}
