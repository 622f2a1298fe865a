package bootstrap

import (
	"context"
	"log/slog"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/adapters/movieapi"
	"github.com/target/movie-gallery/internal/observability/statsd"
)

// BuildMovieClient creates the remote movie source from config.
func BuildMovieClient(
	ctx context.Context,
	cfg config.MovieAPIConfig,
	metrics statsd.Sink,
	logger *slog.Logger,
) (*movieapi.Client, error) {
	var creds *movieapi.ClientCredentials
	if cfg.UsesClientCredentials() {
		creds = &movieapi.ClientCredentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
	}

	return movieapi.NewClient(ctx, movieapi.Config{
		BaseURL:           cfg.BaseURL,
		MoviesPath:        cfg.MoviesPath,
		Timeout:           cfg.Timeout,
		BearerToken:       cfg.BearerToken,
		ClientCredentials: creds,
		Mapping: movieapi.Mapping{
			Success: cfg.SuccessExpr,
			Movies:  cfg.MoviesExpr,
			Total:   cfg.TotalExpr,
		},
		Metrics: metrics,
		Logger:  logger,
	})
}
