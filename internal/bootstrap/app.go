package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/movie-gallery/config"
	httpx "github.com/target/movie-gallery/internal/http"
	"github.com/target/movie-gallery/internal/i18n"
)

// Run wires the gallery from cfg and serves it until ctx is cancelled.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	metrics := BuildMetrics(cfg.Observability.Metrics, logger)
	defer func() {
		if err := metrics.Close(); err != nil {
			logger.Warn("close statsd client failed", "error", err)
		}
	}()

	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Error("close redis failed", "error", err)
			}
		}()
		redisClient = client
	} else {
		logger.WarnContext(ctx, "redis disabled; sessions are kept in memory")
	}
	stores := BuildStores(cfg.Redis, redisClient)

	authSvc, err := BuildAuthService(ctx, AuthConfig{
		Auth:     cfg.Auth,
		Sessions: stores.Sessions,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	movies, err := BuildMovieClient(ctx, cfg.MovieAPI, metrics, logger)
	if err != nil {
		return fmt.Errorf("movie api client: %w", err)
	}

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	handler := BuildHTTPHandler(HTTPHandlerConfig{
		Config: cfg,
		Services: httpx.RouterServices{
			Auth:     authSvc,
			Movies:   movies,
			NavState: stores.NavState,
			Catalog:  catalog,
			Metrics:  metrics,
		},
		Logger: logger,
	})

	return Serve(ctx, cfg.HTTP.Addr, handler, logger)
}
