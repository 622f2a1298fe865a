package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parseFrom(t *testing.T, vars map[string]string) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	cfg := parseFrom(t, map[string]string{})

	if cfg.IsDev {
		t.Fatalf("expected production mode by default")
	}
	if cfg.Auth.Mode != AuthModeOAuth {
		t.Fatalf("expected oauth mode by default, got %q", cfg.Auth.Mode)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("expected redis to be disabled by default")
	}
	if cfg.MovieAPI.MoviesPath != "/movies" || cfg.MovieAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected movie api defaults: %#v", cfg.MovieAPI)
	}
	if cfg.MovieAPI.MoviesExpr != "data.movies" || cfg.MovieAPI.TotalExpr != "data.total" ||
		cfg.MovieAPI.SuccessExpr != "success" {
		t.Fatalf("unexpected mapping defaults: %#v", cfg.MovieAPI)
	}
	want := GalleryConfig{
		EmptyRoute:   "/app/emptyList",
		CreateRoute:  "/app/create",
		EditRoute:    "/app/edit",
		AuthRoute:    "/auth",
		EditStateTTL: 5 * time.Minute,
	}
	if cfg.Gallery != want {
		t.Fatalf("unexpected gallery defaults: %#v", cfg.Gallery)
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	cfg := parseFrom(t, map[string]string{
		"AUTH_MODE":             "OAuth",
		"AUTH_SESSION_DURATION": "2h",
		"OAUTH_CLIENT_ID":       "app-client",
		"OAUTH_CLIENT_SECRET":   "super-secret",
		"OAUTH_REDIRECT_URL":    "https://app.example.com/auth/callback",
		"OAUTH_DISCOVERY_URL":   "https://login.example.com/.well-known/openid-configuration",
		"OAUTH_SCOPE":           "openid profile",
		"DEV_AUTH_USER_ID":      "dev-user",
		"DEV_AUTH_NAME":         "Dana Dev",
		"DEV_AUTH_EMAIL":        "dev@example.com",
	})

	expected := AuthConfig{
		Mode:            AuthModeOAuth,
		SessionDuration: 2 * time.Hour,
		OAuth: OAuthConfig{
			ClientID:     "app-client",
			ClientSecret: "super-secret",
			RedirectURL:  "https://app.example.com/auth/callback",
			Scope:        "openid profile",
			DiscoveryURL: "https://login.example.com/.well-known/openid-configuration",
		},
		DevAuth: DevAuthConfig{
			UserID: "dev-user",
			Name:   "Dana Dev",
			Email:  "dev@example.com",
		},
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
	if missing := cfg.Auth.OAuth.Missing(); len(missing) != 0 {
		t.Fatalf("expected complete oauth config, missing %v", missing)
	}
}

func TestAuthMode_RejectsUnknown(t *testing.T) {
	var cfg AppConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{"AUTH_MODE": "saml"}})
	if err == nil {
		t.Fatalf("expected error for unknown auth mode")
	}
}

func TestOAuthConfig_Missing(t *testing.T) {
	got := OAuthConfig{ClientSecret: "s"}.Missing()
	want := []string{"OAUTH_DISCOVERY_URL", "OAUTH_CLIENT_ID"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Missing() = %v, want %v", got, want)
	}
}

func TestMovieAPIConfig_Parse(t *testing.T) {
	cfg := parseFrom(t, map[string]string{
		"MOVIE_API_BASE_URL":      " https://movies.example.com/api/ ",
		"MOVIE_API_MOVIES_PATH":   "",
		"MOVIE_API_TIMEOUT":       "0s",
		"MOVIE_API_CLIENT_ID":     "gallery",
		"MOVIE_API_CLIENT_SECRET": "secret",
		"MOVIE_API_TOKEN_URL":     "https://login.example.com/token",
		"MOVIE_API_SCOPES":        "movies.read  movies.list",
		"MOVIE_API_TOTAL_EXPR":    "meta.pages",
	})

	api := cfg.MovieAPI
	if api.BaseURL != "https://movies.example.com/api" {
		t.Fatalf("base url not normalised: %q", api.BaseURL)
	}
	if api.MoviesPath != "/movies" {
		t.Fatalf("blank path should fall back to default, got %q", api.MoviesPath)
	}
	if api.Timeout != 10*time.Second {
		t.Fatalf("non-positive timeout should fall back to default, got %s", api.Timeout)
	}
	if !api.UsesClientCredentials() {
		t.Fatalf("expected client credentials to be configured")
	}
	if !reflect.DeepEqual(api.Scopes, []string{"movies.read", "movies.list"}) {
		t.Fatalf("unexpected scopes %q", api.Scopes)
	}
	if api.TotalExpr != "meta.pages" {
		t.Fatalf("unexpected total expression %q", api.TotalExpr)
	}
}

func TestGalleryConfig_Sanitize(t *testing.T) {
	cfg := GalleryConfig{
		EmptyRoute:   "/app/nothing",
		CreateRoute:  "https://evil.example.com/create",
		EditRoute:    "//evil.example.com",
		AuthRoute:    " /login ",
		EditStateTTL: -time.Second,
	}

	cfg.Sanitize()

	want := GalleryConfig{
		EmptyRoute:   "/app/nothing",
		CreateRoute:  "/app/create",
		EditRoute:    "/app/edit",
		AuthRoute:    "/login",
		EditStateTTL: 5 * time.Minute,
	}
	if cfg != want {
		t.Fatalf("unexpected gallery config:\nexpected: %#v\ngot:      %#v", want, cfg)
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name  string
		in    HTTPConfig
		level int
		addr  string
	}{
		{name: "clamps low level", in: HTTPConfig{Addr: ":9090", CompressionLevel: 0}, level: 1, addr: ":9090"},
		{name: "clamps high level", in: HTTPConfig{Addr: ":9090", CompressionLevel: 12}, level: 9, addr: ":9090"},
		{name: "restores blank addr", in: HTTPConfig{Addr: "  ", CompressionLevel: 6}, level: 6, addr: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			if cfg.CompressionLevel != tt.level || cfg.Addr != tt.addr {
				t.Fatalf("got level=%d addr=%q, want level=%d addr=%q",
					cfg.CompressionLevel, cfg.Addr, tt.level, tt.addr)
			}
		})
	}
}

func TestRedisConfig_Sanitize(t *testing.T) {
	cfg := parseFrom(t, map[string]string{
		"REDIS_ENABLED":        "true",
		"REDIS_URI":            " redis://cache:6379/2 ",
		"REDIS_CLUSTER_NODES":  "a:7000, ,b:7001",
		"REDIS_SENTINEL_NODES": " s1:26379 ",
	})

	if !cfg.Redis.Enabled || cfg.Redis.URI != "redis://cache:6379/2" {
		t.Fatalf("unexpected redis config %#v", cfg.Redis)
	}
	if !reflect.DeepEqual(cfg.Redis.ClusterNodes, []string{"a:7000", "b:7001"}) {
		t.Fatalf("unexpected cluster nodes %q", cfg.Redis.ClusterNodes)
	}
	if !reflect.DeepEqual(cfg.Redis.SentinelNodes, []string{"s1:26379"}) {
		t.Fatalf("unexpected sentinel nodes %q", cfg.Redis.SentinelNodes)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "Development")
	cfg := parseFrom(t, map[string]string{})
	if !cfg.IsDev {
		t.Fatalf("expected NODE_ENV=development to enable dev mode")
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}
