package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/target/movie-gallery/internal/gallery"
	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
	"github.com/target/movie-gallery/internal/ports"
)

// EmptyList renders the screen shown when the gallery has no movies.
// GET /app/emptyList.
func (h *UIHandlers) EmptyList(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, viewmodel.EmptyListPage{
		Layout:    h.buildLayout(w, r, PageMeta{TitleKey: "EmptyList.title", CurrentPage: PageEmptyList}),
		CreateURL: moviesNewPath,
	})
}

// CreateScreen renders the blank movie form.
// GET /app/create.
func (h *UIHandlers) CreateScreen(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, viewmodel.MovieFormPage{
		Layout:  h.buildLayout(w, r, PageMeta{TitleKey: "CreateMovie.title", CurrentPage: PageCreate}),
		BackURL: moviesPath,
	})
}

// EditScreen renders the form for the movie handed over by the gallery.
// The hand-over is consumed on first read; a stale or reused link returns to the gallery.
// GET /app/edit?state=<token>.
func (h *UIHandlers) EditScreen(w http.ResponseWriter, r *http.Request) {
	state, err := h.takeEditState(r)
	if err != nil {
		if !errors.Is(err, ports.ErrNavStateNotFound) {
			h.logger().WarnContext(r.Context(), "edit state unavailable", "error", err)
		}
		tr := GetTranslatorFromContext(r.Context())
		h.cookies().setFlash(w, r, viewmodel.Toast{Message: tr.T("EditMovie.missing"), Type: viewmodel.ToastError})
		redirect(w, r, moviesPath)
		return
	}
	h.renderPage(w, r, viewmodel.MovieFormPage{
		Layout:  h.buildLayout(w, r, PageMeta{TitleKey: "EditMovie.title", CurrentPage: PageEdit}),
		Movie:   state.Data,
		Update:  state.Update,
		BackURL: moviesPath,
	})
}

func (h *UIHandlers) takeEditState(r *http.Request) (gallery.EditState, error) {
	var state gallery.EditState
	token := r.URL.Query().Get(navStateParam)
	sess := GetSessionFromContext(r.Context())
	if token == "" || sess == nil || h.NavState == nil {
		return state, ports.ErrNavStateNotFound
	}
	payload, err := h.NavState.Take(r.Context(), sess.ID, token)
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(payload, &state); err != nil {
		return state, err
	}
	return state, nil
}

// AuthScreen is the sign-in entry point. Signed-in users go straight to the gallery.
// GET /auth.
func (h *UIHandlers) AuthScreen(w http.ResponseWriter, r *http.Request) {
	target := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	if h.Auth != nil {
		if sess := getSessionFromRequest(r, h.Auth); sess != nil {
			if target == "/" {
				target = moviesPath
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
	}

	login := url.URL{Path: loginPath}
	if target != "/" {
		login.RawQuery = url.Values{"redirect_uri": {target}}.Encode()
	}
	h.renderPage(w, r, viewmodel.AuthPage{
		Layout:   h.buildLayout(w, r, PageMeta{TitleKey: "Auth.title", CurrentPage: PageAuth}),
		LoginURL: login.String(),
	})
}

// NotFound renders the 404 page for browsers and a JSON error otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("not found")})
		return
	}

	tr := GetTranslatorFromContext(r.Context())
	back := "/"
	if h.Auth != nil && getSessionFromRequest(r, h.Auth) != nil {
		back = moviesPath
	}
	data := viewmodel.ErrorPage{
		Layout:  h.buildLayout(w, r, PageMeta{TitleKey: "NotFound.title", CurrentPage: PageError}),
		Code:    http.StatusNotFound,
		Message: tr.T("NotFound.title"),
		BackURL: back,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil {
		_, _ = w.Write([]byte(tr.T("NotFound.title")))
		return
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		_, _ = w.Write([]byte(tr.T("NotFound.title")))
	}
}
