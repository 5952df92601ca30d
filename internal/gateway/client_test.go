package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/gateway"
)

func TestErrorBodyMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "question not found"}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	err := client.Get(context.Background(), "/api/designer/questions/q-1", "tok", nil)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "question not found", apiErr.Message)
	assert.Equal(t, "question not found (HTTP 404)", apiErr.Error())
}

func TestNonJSONErrorBodyDegradesToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html><body>Bad Gateway</body></html>`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	err := client.Get(context.Background(), "/api/users/profile", "tok", nil)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "an error occurred", apiErr.Message)
}

func TestBearerTokenForwarded(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	err := client.Get(context.Background(), "/api/users/profile", "tok-123", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "tok-1"}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestContextCancellationAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := gateway.NewClient(srv.URL)
	err := client.Get(ctx, "/api/users", "tok", nil)
	require.Error(t, err)
	assert.NotErrorAs(t, err, new(*gateway.APIError))
}
