package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/gateway/gatewaytest"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/session"
	"github.com/soalpich/soalpich-web/internal/storage/memory"
	"github.com/soalpich/soalpich-web/internal/testutil"
)

func setupManager(t *testing.T) (*gatewaytest.Backend, *memory.Storage, *session.Manager) {
	t.Helper()

	backend := gatewaytest.NewBackend()
	t.Cleanup(backend.Close)

	store := memory.New()
	manager := session.NewManager(gateway.NewClient(backend.URL()), store, testutil.NopLogger())

	return backend, store, manager
}

func TestLoginPersistsTokenAndReturnsIdentity(t *testing.T) {
	backend, store, manager := setupManager(t)
	backend.AddUser("alice", "secret", model.RolePlayer)
	ctx := context.Background()

	identity, err := manager.Login(ctx, "sid-1", "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, model.RolePlayer, identity.Role)

	token, err := store.GetToken(ctx, "sid-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginFailureLeavesNoToken(t *testing.T) {
	backend, store, manager := setupManager(t)
	backend.AddUser("alice", "secret", model.RolePlayer)
	ctx := context.Background()

	_, err := manager.Login(ctx, "sid-1", "alice", "wrong")
	require.ErrorIs(t, err, session.ErrLoginFailed)

	_, err = store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestRestoreWithoutTokenIsAnonymous(t *testing.T) {
	_, _, manager := setupManager(t)

	sess := manager.Restore(context.Background(), "sid-unknown")
	assert.Equal(t, session.StateAnonymous, sess.State)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.Identity)
}

func TestRestoreWithValidToken(t *testing.T) {
	backend, store, manager := setupManager(t)
	userID := backend.AddUser("alice", "secret", model.RolePlayer)
	token := backend.IssueToken(userID)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "sid-1", token))

	sess := manager.Restore(ctx, "sid-1")
	assert.Equal(t, session.StateAuthenticated, sess.State)
	require.NotNil(t, sess.Identity)
	assert.Equal(t, "alice", sess.Identity.Username)
	assert.Equal(t, token, sess.Token)
}

func TestRestoreRejectedTokenIsRemoved(t *testing.T) {
	backend, store, manager := setupManager(t)
	userID := backend.AddUser("alice", "secret", model.RolePlayer)
	token := backend.IssueToken(userID)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "sid-1", token))
	backend.RevokeToken(token)

	sess := manager.Restore(ctx, "sid-1")
	assert.Equal(t, session.StateAnonymous, sess.State)

	// The stale token must not survive the rejection
	_, err := store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestLogoutRemovesToken(t *testing.T) {
	backend, store, manager := setupManager(t)
	backend.AddUser("alice", "secret", model.RolePlayer)
	ctx := context.Background()

	_, err := manager.Login(ctx, "sid-1", "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, manager.Logout(ctx, "sid-1"))

	_, err = store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	_, _, manager := setupManager(t)
	ctx := context.Background()

	require.NoError(t, manager.Logout(ctx, "sid-1"))
	require.NoError(t, manager.Logout(ctx, "sid-1"))
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	_, store, manager := setupManager(t)
	ctx := context.Background()

	err := manager.Register(ctx, "bob", "hunter2", model.RoleDesigner)
	require.NoError(t, err)

	_, err = store.GetToken(ctx, "sid-1")
	assert.ErrorIs(t, err, model.ErrTokenNotFound)

	// The fresh account logs in with the same credentials
	identity, err := manager.Login(ctx, "sid-1", "bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleDesigner, identity.Role)
}

func TestSessionsAreIsolated(t *testing.T) {
	backend, _, manager := setupManager(t)
	backend.AddUser("alice", "secret", model.RolePlayer)
	backend.AddUser("bob", "hunter2", model.RoleDesigner)
	ctx := context.Background()

	_, err := manager.Login(ctx, "sid-a", "alice", "secret")
	require.NoError(t, err)
	_, err = manager.Login(ctx, "sid-b", "bob", "hunter2")
	require.NoError(t, err)

	sessA := manager.Restore(ctx, "sid-a")
	sessB := manager.Restore(ctx, "sid-b")
	require.NotNil(t, sessA.Identity)
	require.NotNil(t, sessB.Identity)
	assert.Equal(t, "alice", sessA.Identity.Username)
	assert.Equal(t, "bob", sessB.Identity.Username)
}
