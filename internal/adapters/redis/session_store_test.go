package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/ports"
	"github.com/target/movie-gallery/internal/testutil"
)

func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	prefix := testutil.KeyPrefix(t, "session")
	testutil.CleanupKeys(t, client, prefix)
	return NewSessionStoreWithPrefix(client, prefix)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-123",
		Name:      "Ada",
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Name, got.Name)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	ttl, err := store.client.TTL(ctx, store.prefix+"sess-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 25*time.Minute)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_SaveRejectsInvalid(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: time.Now().Add(time.Hour)}))
	require.Error(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)}))
}

func TestSessionStore_ExpiredOnRead(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	now := time.Now()
	store.now = testutil.FixedTimeFunc(now)
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s", UserID: "u", ExpiresAt: now.Add(time.Hour)}))

	store.now = testutil.FixedTimeFunc(now.Add(2 * time.Hour))
	_, err := store.Get(ctx, "s")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	exists, err := store.client.Exists(ctx, store.prefix+"s").Result()
	require.NoError(t, err)
	assert.Zero(t, exists, "expired session is removed")
}

func TestSessionStore_Delete(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "d", UserID: "u", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Delete(ctx, "d"))
	require.NoError(t, store.Delete(ctx, "d"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "d")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}
