package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/model"
)

func TestHomePageAnonymous(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find(`nav a[href="/login"]`).Length())
	assert.Equal(t, 1, doc.Find(`nav a[href="/register"]`).Length())
	assert.Zero(t, doc.Find(`nav a[href="/dashboard"]`).Length())
}

func TestLoginFlow(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("alice", "secret", model.RolePlayer)

	assert.True(t, ts.cookies.hasSession())

	rr := ts.get("/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Find("nav").Text(), "alice")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newWebTestServer(t)
	ts.backend.AddUser("alice", "secret", model.RolePlayer)

	rr := ts.post("/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("p.error").Length())
}

func TestProtectedRouteRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/dashboard")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rr.Header().Get("Location"))
}

func TestLoginHonorsNextParameter(t *testing.T) {
	ts := newWebTestServer(t)
	ts.backend.AddUser("alice", "secret", model.RolePlayer)

	rr := ts.post("/login", url.Values{
		"username": {"alice"},
		"password": {"secret"},
		"next":     {"/player/quiz"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/player/quiz", rr.Header().Get("Location"))
}

func TestRedirectEscapesNestedPath(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/player/quiz")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fplayer%2Fquiz", rr.Header().Get("Location"))

	// The login form carries the original path back unescaped
	rr = ts.get(rr.Header().Get("Location"))
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	next, ok := doc.Find(`input[name="next"]`).Attr("value")
	require.True(t, ok)
	assert.Equal(t, "/player/quiz", next)
}

func TestRegisterValidation(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/register", url.Values{
		"username":         {""},
		"password":         {"pw"},
		"password_confirm": {"other"},
		"role":             {"admin"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	// Username missing, password mismatch and invalid role all surface
	assert.Equal(t, 3, doc.Find("p.field-error").Length())
}

func TestRegisterThenLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/register", url.Values{
		"username":         {"bob"},
		"password":         {"hunter2"},
		"password_confirm": {"hunter2"},
		"role":             {"designer"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))

	rr = ts.post("/login", url.Values{
		"username": {"bob"},
		"password": {"hunter2"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newWebTestServer(t)
	ts.backend.AddUser("alice", "secret", model.RolePlayer)

	rr := ts.post("/register", url.Values{
		"username":         {"alice"},
		"password":         {"pw"},
		"password_confirm": {"pw"},
		"role":             {"player"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("p.error").Length())
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("alice", "secret", model.RolePlayer)

	rr := ts.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	// Session is gone; protected pages bounce back to login
	rr = ts.get("/dashboard")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rr.Header().Get("Location"))
}

func TestLogoutTwiceIsHarmless(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("alice", "secret", model.RolePlayer)

	rr := ts.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	rr = ts.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestRevokedTokenDegradesToAnonymous(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("alice", "secret", model.RolePlayer)

	sid := ts.cookies.cookies["soalpich_session"].Value
	token, err := ts.app.TokenStore.GetToken(t.Context(), sid)
	require.NoError(t, err)

	// Simulate backend-side expiry of the session
	ts.backend.RevokeToken(token)

	rr := ts.get("/dashboard")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rr.Header().Get("Location"))

	// The rejected token is dropped from the store
	_, err = ts.app.TokenStore.GetToken(t.Context(), sid)
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}
