package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/target/movie-gallery/internal/gallery"
	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
	"github.com/target/movie-gallery/internal/observability/statsd"
	"github.com/target/movie-gallery/internal/ports"
)

// DefaultEditStateTTL bounds how long an edit hand-over survives between two requests.
const DefaultEditStateTTL = 5 * time.Minute

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	Auth         AuthServiceInterface
	Movies       ports.MovieSource
	NavState     ports.NavStateStore
	Routes       gallery.Routes
	Metrics      statsd.Sink
	EditStateTTL time.Duration
	CookieDomain string
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) cookies() cookieSetter { return cookieSetter{Domain: h.CookieDomain} }

func (h *UIHandlers) routes() gallery.Routes {
	if h.Routes == (gallery.Routes{}) {
		return gallery.DefaultRoutes()
	}
	return h.Routes
}

func (h *UIHandlers) editStateTTL() time.Duration {
	if h.EditStateTTL > 0 {
		return h.EditStateTTL
	}
	return DefaultEditStateTTL
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	TitleKey    string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request context.
// It consumes any pending flash toast, so call it only for full page renders.
func (h *UIHandlers) buildLayout(w http.ResponseWriter, r *http.Request, meta PageMeta) viewmodel.Layout {
	tr := GetTranslatorFromContext(r.Context())
	layout := viewmodel.Layout{
		Title:       tr.T(meta.TitleKey),
		PageTitle:   tr.T(meta.TitleKey),
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
		Lang:        tr.Lang(),
		Translator:  tr,
		Flash:       h.cookies().takeFlash(w, r),
	}
	if s := GetSessionFromContext(r.Context()); s != nil {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{Name: s.DisplayName(), Email: s.Email}
	}
	return layout
}

// fragmentLayout is the layout for htmx fragments: no flash, no chrome.
func fragmentLayout(r *http.Request) viewmodel.Layout {
	tr := GetTranslatorFromContext(r.Context())
	return viewmodel.Layout{CSRFToken: GetCSRFToken(r), Lang: tr.Lang(), Translator: tr}
}

// renderPage writes a full page, falling back to plain text if templates fail.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	if h.T == nil {
		http.Error(w, "templates unavailable", http.StatusInternalServerError)
		return
	}
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, toast viewmodel.Toast) {
	if w == nil || strings.TrimSpace(toast.Message) == "" {
		return
	}
	HTMX(w).Trigger(toastEventName, toast)
}

// toastCollector records the view's notifications so the handler can deliver them
// with whatever response it ends up writing.
type toastCollector struct {
	toasts []viewmodel.Toast
}

func (c *toastCollector) Error(msg string) {
	c.toasts = append(c.toasts, viewmodel.Toast{Message: msg, Type: viewmodel.ToastError})
}

func (c *toastCollector) Success(msg string) {
	c.toasts = append(c.toasts, viewmodel.Toast{Message: msg, Type: viewmodel.ToastSuccess})
}

// last returns the most recent toast; the view raises at most one per action.
func (c *toastCollector) last() (viewmodel.Toast, bool) {
	if len(c.toasts) == 0 {
		return viewmodel.Toast{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}

// navRecorder captures the view's navigation request.
type navRecorder struct {
	route string
	state any
	calls int
}

func (n *navRecorder) Navigate(route string, state any) {
	n.route = route
	n.state = state
	n.calls++
}

func (n *navRecorder) navigated() bool { return n.calls > 0 }

// newView builds a gallery view wired to this request.
func (h *UIHandlers) newView(r *http.Request, notes *toastCollector, nav *navRecorder, session gallery.SessionService) (*gallery.View, error) {
	tr := GetTranslatorFromContext(r.Context())
	return gallery.New(gallery.Options{
		Source:    h.Movies,
		Notifier:  notes,
		Navigator: nav,
		Session:   session,
		Routes:    h.routes(),
		Translate: tr.T,
		Metrics:   h.Metrics,
		Logger:    h.logger(),
	})
}

// follow turns a recorded navigation into a response. Navigation state is parked in the
// NavStateStore under the caller's session and referenced by an opaque token, and any
// toast rides along as a flash so it shows on the destination page.
func (h *UIHandlers) follow(w http.ResponseWriter, r *http.Request, nav *navRecorder, notes *toastCollector) error {
	target := nav.route
	if nav.state != nil {
		token, err := h.parkState(r, nav.state)
		if err != nil {
			return err
		}
		target += "?" + url.Values{navStateParam: {token}}.Encode()
	}
	if toast, ok := notes.last(); ok {
		h.cookies().setFlash(w, r, toast)
	}
	redirect(w, r, target)
	return nil
}

func (h *UIHandlers) parkState(r *http.Request, state any) (string, error) {
	if h.NavState == nil {
		return "", errors.New("navigation state store is not configured")
	}
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		return "", errors.New("navigation state requires a session")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode navigation state: %w", err)
	}
	token, err := h.NavState.Put(r.Context(), sess.ID, payload, h.editStateTTL())
	if err != nil {
		return "", fmt.Errorf("store navigation state: %w", err)
	}
	return token, nil
}
