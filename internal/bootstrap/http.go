package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/gallery"
	httpx "github.com/target/movie-gallery/internal/http"
)

const shutdownTimeout = 10 * time.Second

// HTTPHandlerConfig contains what the HTTP handler chain is built from.
type HTTPHandlerConfig struct {
	Config   *config.AppConfig
	Services httpx.RouterServices
	Logger   *slog.Logger
}

// BuildHTTPHandler wraps the router with the server-wide middleware.
// Order: Recover -> Logging -> Compression -> Router.
func BuildHTTPHandler(cfg HTTPHandlerConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	services := cfg.Services
	services.Logger = logger

	var httpCfg config.HTTPConfig
	if cfg.Config != nil {
		httpCfg = cfg.Config.HTTP
		services.IsDev = cfg.Config.IsDev
		services.CookieDomain = httpCfg.CookieDomain
		services.EditStateTTL = cfg.Config.Gallery.EditStateTTL
		services.Routes = galleryRoutes(cfg.Config.Gallery)
		if services.TemplateFS == nil && httpCfg.TemplateDir != "" {
			services.TemplateFS = os.DirFS(httpCfg.TemplateDir)
		}
	}

	h := httpx.NewRouter(services)
	if httpCfg.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", httpCfg.CompressionLevel)
		h = httpx.Compression(httpx.CompressionConfig{Level: httpCfg.CompressionLevel, Logger: logger})(h)
	}
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}

func galleryRoutes(cfg config.GalleryConfig) gallery.Routes {
	return gallery.Routes{
		Empty:  cfg.EmptyRoute,
		Create: cfg.CreateRoute,
		Edit:   cfg.EditRoute,
		Auth:   cfg.AuthRoute,
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})
	return g.Wait()
}
