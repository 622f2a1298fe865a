package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/gallery"
	"github.com/target/movie-gallery/internal/mocks"
	mockauth "github.com/target/movie-gallery/internal/mocks/auth"
	"github.com/target/movie-gallery/internal/ports"
	"github.com/target/movie-gallery/internal/testutil"
)

var _ gallery.SessionService = (*CurrentUserRemover)(nil)

func newTestService(t *testing.T) (*AuthService, *mockauth.MockAuthProvider, *mocks.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mockauth.NewMockAuthProvider()
	store := mocks.NewMockSessionStore(ctrl)
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: store,
		Now:      testutil.FixedTimeFunc(testutil.TestTime()),
	})
	return svc, provider, store
}

func TestAuthService_BeginLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.BeginLogin(context.Background(), "/app/movies")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.Equal(t, "state-1", res.State)
	assert.Equal(t, "nonce-1", res.Nonce)
}

func TestAuthService_BeginLogin_Errors(t *testing.T) {
	svc, provider, _ := newTestService(t)

	_, err := svc.BeginLogin(context.Background(), "")
	require.ErrorContains(t, err, "redirect URL is required")

	provider.BeginFunc = func(context.Context, ports.BeginInput) (string, string, string, error) {
		return "", "", "", errors.New("idp down")
	}
	_, err = svc.BeginLogin(context.Background(), "/")
	require.ErrorContains(t, err, "begin auth flow: idp down")
}

func TestAuthService_CompleteLogin(t *testing.T) {
	svc, provider, store := newTestService(t)
	expires := testutil.TestTime().Add(time.Hour)
	provider.ExchangeFunc = func(_ context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
		assert.Equal(t, ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"}, in)
		return domainauth.Identity{UserID: "u1", Name: "Ada", Email: "ada@example.com", ExpiresAt: expires}, nil
	}

	var saved domainauth.Session
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s domainauth.Session) error {
		saved = s
		return nil
	})

	sess, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, saved, sess)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Ada", sess.Name)
	assert.Equal(t, expires, sess.ExpiresAt)
}

func TestAuthService_CompleteLogin_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    CompleteLoginInput
		setup func(*mockauth.MockAuthProvider, *mocks.MockSessionStore)
		want  string
	}{
		{name: "missing code", in: CompleteLoginInput{State: "s", Nonce: "n"}, want: "authorization code is required"},
		{name: "missing state", in: CompleteLoginInput{Code: "c", Nonce: "n"}, want: "state parameter is required"},
		{name: "missing nonce", in: CompleteLoginInput{Code: "c", State: "s"}, want: "nonce parameter is required"},
		{
			name: "exchange error",
			in:   CompleteLoginInput{Code: "c", State: "s", Nonce: "n"},
			setup: func(p *mockauth.MockAuthProvider, _ *mocks.MockSessionStore) {
				p.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
					return domainauth.Identity{}, errors.New("bad code")
				}
			},
			want: "exchange authorization code: bad code",
		},
		{
			name: "save error",
			in:   CompleteLoginInput{Code: "c", State: "s", Nonce: "n"},
			setup: func(_ *mockauth.MockAuthProvider, s *mocks.MockSessionStore) {
				s.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			want: "save session: redis down",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, store := newTestService(t)
			if tt.setup != nil {
				tt.setup(provider, store)
			}
			_, err := svc.CompleteLogin(context.Background(), tt.in)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestAuthService_GetSession(t *testing.T) {
	svc, _, store := newTestService(t)
	live := domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: testutil.TestTime().Add(time.Minute)}
	store.EXPECT().Get(gomock.Any(), "s1").Return(live, nil)

	got, err := svc.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, live, got)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	svc, _, store := newTestService(t)

	_, err := svc.GetSession(context.Background(), "")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	store.EXPECT().Get(gomock.Any(), "gone").Return(domainauth.Session{}, ports.ErrSessionNotFound)
	_, err = svc.GetSession(context.Background(), "gone")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	svc, _, store := newTestService(t)
	stale := domainauth.Session{ID: "s1", ExpiresAt: testutil.TestTime().Add(-time.Second)}

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), "s1").Return(stale, nil),
		store.EXPECT().Delete(gomock.Any(), "s1").Return(nil),
	)
	_, err := svc.GetSession(context.Background(), "s1")
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_GetSession_ExpiredDeleteFails(t *testing.T) {
	svc, _, store := newTestService(t)
	stale := domainauth.Session{ID: "s1", ExpiresAt: testutil.TestTime().Add(-time.Second)}

	store.EXPECT().Get(gomock.Any(), "s1").Return(stale, nil)
	store.EXPECT().Delete(gomock.Any(), "s1").Return(errors.New("redis down"))

	_, err := svc.GetSession(context.Background(), "s1")
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorContains(t, err, "redis down")
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, store := newTestService(t)

	require.NoError(t, svc.Logout(context.Background(), ""))

	store.EXPECT().Delete(gomock.Any(), "s1").Return(nil)
	require.NoError(t, svc.Logout(context.Background(), "s1"))

	store.EXPECT().Delete(gomock.Any(), "s2").Return(errors.New("boom"))
	require.ErrorContains(t, svc.Logout(context.Background(), "s2"), "delete session: boom")
}

func TestCurrentUserRemover(t *testing.T) {
	svc, _, store := newTestService(t)
	store.EXPECT().Delete(gomock.Any(), "s1").Return(nil).Times(1)

	r := NewCurrentUserRemover(svc, "s1")
	assert.False(t, r.Removed())
	require.NoError(t, r.RemoveCurrentUser(context.Background()))
	assert.True(t, r.Removed())

	failing := NewCurrentUserRemover(nil, "s1")
	require.Error(t, failing.RemoveCurrentUser(context.Background()))
	assert.False(t, failing.Removed())
}
