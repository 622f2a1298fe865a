package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	moviegallery "github.com/target/movie-gallery"
	"github.com/target/movie-gallery/internal/gallery"
	"github.com/target/movie-gallery/internal/i18n"
	"github.com/target/movie-gallery/internal/observability/statsd"
	"github.com/target/movie-gallery/internal/ports"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth     AuthServiceInterface
	Movies   ports.MovieSource
	NavState ports.NavStateStore
	Catalog  *i18n.Catalog
	Metrics  statsd.Sink
	Routes   gallery.Routes

	EditStateTTL time.Duration
	CookieDomain string
	// TemplateFS overrides where templates are read from; rooted at the templates directory.
	TemplateFS fs.FS
	IsDev      bool // templates and static files are read from disk
	Logger     *slog.Logger
}

// NewRouter creates the HTTP router with its browser middleware.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	ui := setupUIHandlers(services, logger)
	routes := ui.routes()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))

	if services.Auth != nil {
		auth := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			AuthRoute:    routes.Auth,
			Logger:       logger,
		}
		mux.HandleFunc("GET "+loginPath, auth.Login)
		mux.HandleFunc("GET "+callbackPath, auth.Callback)
		mux.HandleFunc("GET /auth/status", auth.Status)
	}
	mux.HandleFunc("GET "+routes.Auth, ui.AuthScreen)

	registerAppRoutes(mux, ui, appRouteConfig{
		Auth:         services.Auth,
		AuthRoute:    routes.Auth,
		CookieDomain: services.CookieDomain,
	})

	mux.Handle("GET /{$}", http.RedirectHandler(moviesPath, http.StatusSeeOther))
	mux.HandleFunc("/", ui.NotFound)

	return BrowserDetection()(Localization(services.Catalog)(mux))
}

type appRouteConfig struct {
	Auth         AuthServiceInterface
	AuthRoute    string
	CookieDomain string
}

// wrap requires a session, then checks CSRF on state-changing requests.
func (cfg appRouteConfig) wrap() func(http.Handler) http.Handler {
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	if cfg.Auth == nil {
		return csrf
	}
	requireAuth := RequireAuthBrowser(cfg.Auth, cfg.AuthRoute)
	return func(h http.Handler) http.Handler { return requireAuth(csrf(h)) }
}

func registerAppRoutes(mux *http.ServeMux, h *UIHandlers, cfg appRouteConfig) {
	wrap := cfg.wrap()
	routes := h.routes()

	mux.Handle("GET "+moviesPath, wrap(http.HandlerFunc(h.MoviesShell)))
	mux.Handle("GET "+moviesGridPath, wrap(http.HandlerFunc(h.MoviesGrid)))
	mux.Handle("POST "+moviesEditPath, wrap(http.HandlerFunc(h.EditMovie)))
	mux.Handle("POST "+moviesNewPath, wrap(http.HandlerFunc(h.NewMovie)))
	mux.Handle("POST "+logoutPath, wrap(http.HandlerFunc(h.Logout)))

	mux.Handle("GET "+routes.Empty, wrap(http.HandlerFunc(h.EmptyList)))
	mux.Handle("GET "+routes.Create, wrap(http.HandlerFunc(h.CreateScreen)))
	mux.Handle("GET "+routes.Edit, wrap(http.HandlerFunc(h.EditScreen)))
}

// setupUIHandlers builds the UI handlers. Without templates the handlers still answer,
// with plain-text fallbacks.
func setupUIHandlers(services RouterServices, logger *slog.Logger) *UIHandlers {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services, logger),
		Logger:     logger,
	})
	if err != nil {
		logger.Error("failed to create template renderer", slog.Any("error", err))
	}
	return &UIHandlers{
		T:            tr,
		Auth:         services.Auth,
		Movies:       services.Movies,
		NavState:     services.NavState,
		Routes:       services.Routes,
		Metrics:      services.Metrics,
		EditStateTTL: services.EditStateTTL,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
}

func templateFS(services RouterServices, logger *slog.Logger) fs.FS {
	switch {
	case services.TemplateFS != nil:
		return services.TemplateFS
	case services.IsDev:
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(moviegallery.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		logger.Warn("embedded templates unavailable; reading from disk", slog.Any("error", err))
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	var fsys http.FileSystem = http.Dir(StaticPathFromRoot)
	if !isDev {
		sub, err := fs.Sub(moviegallery.StaticFS, StaticPathFromRoot)
		if err != nil {
			logger.Warn("embedded static assets unavailable; reading from disk", slog.Any("error", err))
		} else {
			fsys = http.FS(sub)
		}
	}
	files := http.StripPrefix("/static/", http.FileServer(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		files.ServeHTTP(w, r)
	})
}
