package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/factory"
	"github.com/soalpich/soalpich-web/internal/gateway/gatewaytest"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/testutil"
	"github.com/soalpich/soalpich-web/internal/web"
)

// webTestServer provides a test server backed by a fake quiz backend
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	backend *gatewaytest.Backend
	app     *factory.App
	cookies *cookieJar
}

// newWebTestServer wires the router against a fake backend
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	backend := gatewaytest.NewBackend()
	t.Cleanup(backend.Close)

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{
		BackendURL: backend.URL(),
		Logger:     logger,
	})
	require.NoError(t, err)

	router := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Sessions: app.Sessions,
		Gateway:  app.Gateway,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		backend: backend,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// login registers the account on the backend and signs in through the form
func (ts *webTestServer) login(username, password string, role model.Role) {
	ts.t.Helper()

	ts.backend.AddUser(username, password, role)

	rr := ts.post("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/dashboard", rr.Header().Get("Location"))
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["soalpich_session"]
	return ok
}
