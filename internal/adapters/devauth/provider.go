// Package devauth provides a config-driven AuthProvider for local development.
package devauth

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/ports"
)

const (
	defaultSessionDuration = 8 * time.Hour
	defaultCallbackPath    = "/auth/callback"
)

// Config controls the dev identity. Name is optional.
type Config struct {
	UserID          string
	Name            string
	Email           string
	SessionDuration time.Duration
	CallbackPath    string
}

// Provider skips the IdP round trip: Begin points straight at our own callback
// and Exchange returns the configured identity regardless of the code.
type Provider struct {
	cfg Config
	now func() time.Time
}

var _ ports.AuthProvider = (*Provider)(nil)

// NewProvider validates cfg and applies defaults.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = defaultSessionDuration
	}
	if cfg.CallbackPath == "" {
		cfg.CallbackPath = defaultCallbackPath
	}
	return &Provider{cfg: cfg, now: time.Now}, nil
}

// Begin returns a local callback URL with fresh state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state := uuid.NewString()
	nonce := uuid.NewString()
	q := url.Values{"code": {"dev"}, "state": {state}}
	return p.cfg.CallbackPath + "?" + q.Encode(), state, nonce, nil
}

// Exchange returns the dev identity with a fresh expiry. State and nonce checks happen in the handler.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
	return domainauth.Identity{
		UserID:    p.cfg.UserID,
		Name:      p.cfg.Name,
		Email:     p.cfg.Email,
		ExpiresAt: p.now().Add(p.cfg.SessionDuration),
	}, nil
}
