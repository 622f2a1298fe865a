package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/adapters/devauth"
	"github.com/target/movie-gallery/internal/adapters/oidc"
	"github.com/target/movie-gallery/internal/ports"
	"github.com/target/movie-gallery/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth     config.AuthConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// BuildAuthService creates an auth service for the configured auth mode.
// The gallery is unusable without sign-in, so misconfiguration is an error.
func BuildAuthService(ctx context.Context, cfg AuthConfig) (*service.AuthService, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("auth mode %s: session store is required", cfg.Auth.Mode)
	}

	var (
		prov ports.AuthProvider
		err  error
	)
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		prov, err = buildDevProvider(cfg)
	case config.AuthModeOAuth:
		prov, err = buildOAuthProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode)
	}
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: cfg.Sessions,
		Logger:   cfg.Logger,
	}), nil
}

//nolint:ireturn // callers only need the port.
func buildDevProvider(cfg AuthConfig) (ports.AuthProvider, error) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("mock authentication enabled; every visitor signs in as the dev user",
			"user_id", cfg.Auth.DevAuth.UserID)
	}
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          cfg.Auth.DevAuth.UserID,
		Name:            cfg.Auth.DevAuth.Name,
		Email:           cfg.Auth.DevAuth.Email,
		SessionDuration: cfg.Auth.SessionDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}
	return prov, nil
}

//nolint:ireturn // callers only need the port.
func buildOAuthProvider(ctx context.Context, cfg AuthConfig) (ports.AuthProvider, error) {
	oauth := cfg.Auth.OAuth
	if missing := oauth.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("oauth auth mode requires %s", strings.Join(missing, ", "))
	}

	prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create oidc provider: %w", err)
	}
	return prov, nil
}
