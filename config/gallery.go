package config

import (
	"strings"
	"time"
)

// GalleryConfig holds the navigation targets the gallery hands off to.
type GalleryConfig struct {
	EmptyRoute   string        `env:"EMPTY_ROUTE"    envDefault:"/app/emptyList"`
	CreateRoute  string        `env:"CREATE_ROUTE"   envDefault:"/app/create"`
	EditRoute    string        `env:"EDIT_ROUTE"     envDefault:"/app/edit"`
	AuthRoute    string        `env:"AUTH_ROUTE"     envDefault:"/auth"`
	EditStateTTL time.Duration `env:"EDIT_STATE_TTL" envDefault:"5m"`
}

// Sanitize keeps routes absolute and the hand-over lifetime positive.
func (c *GalleryConfig) Sanitize() {
	c.EmptyRoute = routeOr(c.EmptyRoute, "/app/emptyList")
	c.CreateRoute = routeOr(c.CreateRoute, "/app/create")
	c.EditRoute = routeOr(c.EditRoute, "/app/edit")
	c.AuthRoute = routeOr(c.AuthRoute, "/auth")
	if c.EditStateTTL <= 0 {
		c.EditStateTTL = 5 * time.Minute
	}
}

func routeOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return fallback
	}
	return v
}
