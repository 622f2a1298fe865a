package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/adapters/memstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildAuthService_MockMode(t *testing.T) {
	svc, err := BuildAuthService(context.Background(), AuthConfig{
		Auth: config.AuthConfig{
			Mode:    config.AuthModeMock,
			DevAuth: config.DevAuthConfig{UserID: "dev", Name: "Dev", Email: "dev@example.com"},
		},
		Sessions: memstore.NewSessionStore(),
		Logger:   discardLogger(),
	})
	require.NoError(t, err)
	require.NotNil(t, svc)

	res, err := svc.BeginLogin(context.Background(), "/app/movies")
	require.NoError(t, err)
	assert.Contains(t, res.AuthURL, "/auth/callback?code=dev")
}

func TestBuildAuthService_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		wantErr string
	}{
		{
			name: "no session store",
			cfg: AuthConfig{
				Auth: config.AuthConfig{Mode: config.AuthModeMock},
			},
			wantErr: "session store is required",
		},
		{
			name: "oauth missing settings",
			cfg: AuthConfig{
				Auth:     config.AuthConfig{Mode: config.AuthModeOAuth, OAuth: config.OAuthConfig{ClientID: "id"}},
				Sessions: memstore.NewSessionStore(),
			},
			wantErr: "OAUTH_DISCOVERY_URL, OAUTH_CLIENT_SECRET",
		},
		{
			name: "mock without identity",
			cfg: AuthConfig{
				Auth:     config.AuthConfig{Mode: config.AuthModeMock},
				Sessions: memstore.NewSessionStore(),
			},
			wantErr: "dev auth provider",
		},
		{
			name: "unknown mode",
			cfg: AuthConfig{
				Auth:     config.AuthConfig{Mode: "saml"},
				Sessions: memstore.NewSessionStore(),
			},
			wantErr: "unsupported auth mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = discardLogger()
			svc, err := BuildAuthService(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
