package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soalpich/soalpich-web/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the browser cookie carrying the opaque session ID
	SessionCookieName = "soalpich_session"
)

// GetSession retrieves the resolved session from the request context.
// Returns the Anonymous session if none was resolved.
func GetSession(ctx context.Context) session.Session {
	s, ok := ctx.Value(sessionContextKey).(session.Session)
	if !ok {
		return session.Anonymous()
	}
	return s
}

// SessionID returns the request's session ID cookie value, or ""
func SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// EnsureSessionID returns the request's session ID, minting and setting a
// cookie when the browser does not have one yet
func EnsureSessionID(w http.ResponseWriter, r *http.Request) string {
	if sid := SessionID(r); sid != "" {
		return sid
	}

	sid := session.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// Auth returns middleware that requires an authenticated session.
// Unauthenticated requests are redirected to the login page.
func Auth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolveSession(r, sessions)
			if !sess.IsAuthenticated() {
				redirectURL := "/login?next=" + url.QueryEscape(r.URL.Path)
				http.Redirect(w, r, redirectURL, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that resolves the session but doesn't require it
func OptionalAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolveSession(r, sessions)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveSession performs the startup-restore step for the request's
// session ID: absent or rejected tokens degrade silently to Anonymous.
func resolveSession(r *http.Request, sessions *session.Manager) session.Session {
	sid := SessionID(r)
	if sid == "" {
		return session.Anonymous()
	}
	return sessions.Restore(r.Context(), sid)
}
