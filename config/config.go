package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication configuration
//   - redis.go: Session and hand-over state storage
//   - http.go: HTTP server configuration
//   - movieapi.go: Remote movie service
//   - gallery.go: Gallery routes and hand-over lifetime
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, dev auth hints).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Auth AuthConfig

	Redis RedisConfig `envPrefix:"REDIS_"`

	HTTP HTTPConfig

	MovieAPI MovieAPIConfig `envPrefix:"MOVIE_API_"`

	Gallery GalleryConfig `envPrefix:"GALLERY_"`

	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.HTTP.Sanitize()
	c.Redis.Sanitize()
	c.MovieAPI.Sanitize()
	c.Gallery.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode falls back to NODE_ENV when DEV is unset.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
