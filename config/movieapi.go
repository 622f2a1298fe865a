package config

import (
	"strings"
	"time"
)

// MovieAPIConfig points the gallery at the remote movie service.
type MovieAPIConfig struct {
	BaseURL     string        `env:"BASE_URL"     envDefault:"http://localhost:3000"`
	MoviesPath  string        `env:"MOVIES_PATH"  envDefault:"/movies"`
	Timeout     time.Duration `env:"TIMEOUT"      envDefault:"10s"`
	BearerToken string        `env:"BEARER_TOKEN"`

	// Client credentials take precedence over BearerToken when ClientID is set.
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	TokenURL     string   `env:"TOKEN_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:" "`

	// JMESPath expressions locating the success flag, movie list and total
	// page count in the response document.
	SuccessExpr string `env:"SUCCESS_EXPR" envDefault:"success"`
	MoviesExpr  string `env:"MOVIES_EXPR"  envDefault:"data.movies"`
	TotalExpr   string `env:"TOTAL_EXPR"   envDefault:"data.total"`
}

// Sanitize trims values and restores defaults for blank settings.
func (c *MovieAPIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.MoviesPath = strings.TrimSpace(c.MoviesPath)
	if c.MoviesPath == "" {
		c.MoviesPath = "/movies"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	c.BearerToken = strings.TrimSpace(c.BearerToken)
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.TokenURL = strings.TrimSpace(c.TokenURL)
	c.Scopes = compact(c.Scopes)
}

// UsesClientCredentials reports whether the OAuth2 client-credentials grant is configured.
func (c *MovieAPIConfig) UsesClientCredentials() bool {
	return c.ClientID != "" && c.TokenURL != ""
}
