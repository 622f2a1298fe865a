package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/ports"
	"github.com/target/movie-gallery/internal/testutil"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	now := testutil.TestTime()
	store := NewSessionStore()
	store.now = testutil.FixedTimeFunc(now)

	sess := domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := testutil.TestTime()
	store := NewSessionStore()
	store.now = testutil.FixedTimeFunc(now)

	require.Error(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: now.Add(-time.Second)}))
	require.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: now.Add(time.Hour)}))

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s", ExpiresAt: now.Add(time.Minute)}))
	store.now = testutil.FixedTimeFunc(now.Add(2 * time.Minute))

	_, err := store.Get(ctx, "s")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.Empty(t, store.sessions)
}

func TestNavStateStore_TakeOnce(t *testing.T) {
	ctx := context.Background()
	store := NewNavStateStore()

	payload := []byte(`{"data":{"_id":"m1"},"update":true}`)
	token, err := store.Put(ctx, "sess", payload, time.Minute)
	require.NoError(t, err)
	payload[0] = 'X'

	got, err := store.Take(ctx, "sess", token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"_id":"m1"},"update":true}`, string(got), "payload is copied on Put")

	_, err = store.Take(ctx, "sess", token)
	require.ErrorIs(t, err, ports.ErrNavStateNotFound)
}

func TestNavStateStore_ScopeAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := testutil.TestTime()
	store := NewNavStateStore()
	store.now = testutil.FixedTimeFunc(now)

	token, err := store.Put(ctx, "alice", []byte("x"), time.Minute)
	require.NoError(t, err)
	_, err = store.Take(ctx, "bob", token)
	require.ErrorIs(t, err, ports.ErrNavStateNotFound)

	store.now = testutil.FixedTimeFunc(now.Add(time.Minute))
	_, err = store.Take(ctx, "alice", token)
	require.ErrorIs(t, err, ports.ErrNavStateNotFound)

	_, err = store.Put(ctx, "", []byte("x"), time.Minute)
	require.Error(t, err)
	_, err = store.Put(ctx, "s", []byte("x"), 0)
	require.Error(t, err)
}

func TestNavStateStore_SweepsOnPut(t *testing.T) {
	ctx := context.Background()
	now := testutil.TestTime()
	store := NewNavStateStore()
	store.now = testutil.FixedTimeFunc(now)

	for range 3 {
		_, err := store.Put(ctx, "s", []byte("x"), time.Second)
		require.NoError(t, err)
	}
	store.now = testutil.FixedTimeFunc(now.Add(time.Hour))
	_, err := store.Put(ctx, "s", []byte("y"), time.Second)
	require.NoError(t, err)
	assert.Len(t, store.entries, 1)
}

func TestNavStateStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewNavStateStore()
	token, err := store.Put(ctx, "s", []byte("x"), time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take(ctx, "s", token); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
