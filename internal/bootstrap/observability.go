package bootstrap

import (
	"log/slog"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/observability/statsd"
)

// BuildMetrics returns the StatsD client, or a no-op client when metrics are off
// or the sink cannot be reached.
func BuildMetrics(cfg config.ObservabilityMetricsConfig, logger *slog.Logger) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		client, _ = statsd.NewClient(statsd.Config{Logger: logger})
	}
	return client
}
