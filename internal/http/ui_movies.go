package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/target/movie-gallery/internal/domain/movie"
	"github.com/target/movie-gallery/internal/gallery"
	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
	"github.com/target/movie-gallery/internal/service"
)

// MoviesShell renders the gallery page in its loading state; the grid loads itself via htmx.
// GET /app/movies?page=N.
func (h *UIHandlers) MoviesShell(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query())
	h.renderPage(w, r, viewmodel.MoviesPage{
		Layout:    h.buildLayout(w, r, PageMeta{TitleKey: "MovieList.My_Movies", CurrentPage: PageMovies}),
		Page:      page,
		GridURL:   gridURL(page, true),
		CreateURL: moviesNewPath,
	})
}

// MoviesGrid loads one page through a gallery view and renders the ready grid.
// GET /app/movies/grid?page=N[&mount=1].
//
// An empty page sends the browser to the empty-list screen. A failed first load renders an
// empty grid, a failed page change keeps the current grid; both raise one error toast.
func (h *UIHandlers) MoviesGrid(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parsePage(q)
	if !IsHTMX(r) {
		http.Redirect(w, r, shellURL(page), http.StatusSeeOther)
		return
	}
	mount := q.Get(mountQueryParam) == "1"

	notes, nav := &toastCollector{}, &navRecorder{}
	view, err := h.newView(r, notes, nav, nil)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "gallery view unavailable", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer view.Unmount()

	switch outcome := view.Mount(r.Context(), page); outcome {
	case gallery.OutcomeRedirected:
		if err := h.follow(w, r, nav, notes); err != nil {
			h.logger().ErrorContext(r.Context(), "empty-list redirect failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	case gallery.OutcomeApplied:
		if !mount {
			HTMX(w).PushURL(shellURL(page))
		}
		h.renderGrid(w, r, view.Snapshot())
	case gallery.OutcomeSoftFailure, gallery.OutcomeHardFailure:
		if toast, ok := notes.last(); ok {
			triggerToast(w, toast)
		}
		if mount {
			h.renderGrid(w, r, view.Snapshot())
			return
		}
		HTMX(w).KeepContent()
	default:
		HTMX(w).KeepContent()
	}
}

func (h *UIHandlers) renderGrid(w http.ResponseWriter, r *http.Request, s gallery.State) {
	cards := make([]viewmodel.MovieCard, 0, len(s.Movies))
	for _, m := range s.Movies {
		cards = append(cards, viewmodel.MovieCard{Movie: m})
	}
	data := viewmodel.Grid{
		Layout: fragmentLayout(r),
		Page:   s.Page,
		Total:  s.Total,
		Movies: cards,
		Pager:  buildPagination(s.Pager()),
	}
	if h.T == nil {
		http.Error(w, "templates unavailable", http.StatusInternalServerError)
		return
	}
	if err := h.T.RenderNamed(w, "movies-grid", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// EditMovie hands the posted movie to the edit screen.
// POST /app/movies/edit.
func (h *UIHandlers) EditMovie(w http.ResponseWriter, r *http.Request) {
	m, ok := movieFromForm(r)
	if !ok {
		h.failInPlace(w, r, http.StatusBadRequest)
		return
	}
	notes, nav := &toastCollector{}, &navRecorder{}
	view, err := h.newView(r, notes, nav, nil)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "gallery view unavailable", "error", err)
		h.failInPlace(w, r, http.StatusInternalServerError)
		return
	}
	view.NavigateEdit(m)
	if err := h.follow(w, r, nav, notes); err != nil {
		h.logger().ErrorContext(r.Context(), "edit hand-over failed", "movie_id", m.ID, "error", err)
		h.failInPlace(w, r, http.StatusInternalServerError)
	}
}

// NewMovie opens the create screen.
// POST /app/movies/new.
func (h *UIHandlers) NewMovie(w http.ResponseWriter, r *http.Request) {
	notes, nav := &toastCollector{}, &navRecorder{}
	view, err := h.newView(r, notes, nav, nil)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "gallery view unavailable", "error", err)
		h.failInPlace(w, r, http.StatusInternalServerError)
		return
	}
	view.NavigateCreate()
	if err := h.follow(w, r, nav, notes); err != nil {
		h.failInPlace(w, r, http.StatusInternalServerError)
	}
}

// Logout signs the current user out and returns to the auth screen.
// POST /app/logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		redirectToAuth(w, r, h.routes().Auth)
		return
	}

	notes, nav := &toastCollector{}, &navRecorder{}
	remover := service.NewCurrentUserRemover(h.Auth, sess.ID)
	view, err := h.newView(r, notes, nav, remover)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "gallery view unavailable", "error", err)
		h.failInPlace(w, r, http.StatusInternalServerError)
		return
	}

	if err := view.Logout(r.Context()); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", "user_id", sess.UserID, "error", err)
		h.deliverInPlace(w, r, notes, http.StatusInternalServerError)
		return
	}
	h.cookies().clear(w, r, sessionCookieName)
	h.logger().InfoContext(r.Context(), "user signed out", "user_id", sess.UserID)
	if err := h.follow(w, r, nav, notes); err != nil {
		h.logger().ErrorContext(r.Context(), "logout redirect failed", "error", err)
	}
}

// failInPlace reports a generic error without leaving the current screen.
func (h *UIHandlers) failInPlace(w http.ResponseWriter, r *http.Request, status int) {
	notes := &toastCollector{}
	notes.Error(GetTranslatorFromContext(r.Context()).T(gallery.MsgError))
	h.deliverInPlace(w, r, notes, status)
}

// deliverInPlace shows the collected toast on the current screen: as an htmx trigger with
// no swap, or for plain form posts as a flash on the gallery page.
func (h *UIHandlers) deliverInPlace(w http.ResponseWriter, r *http.Request, notes *toastCollector, status int) {
	toast, _ := notes.last()
	if IsHTMX(r) {
		triggerToast(w, toast)
		HTMX(w).KeepContent()
		return
	}
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{Code: status, ErrCode: "request_failed"})
		return
	}
	h.cookies().setFlash(w, r, toast)
	http.Redirect(w, r, moviesPath, http.StatusSeeOther)
}

// movieFromForm reads the card's hidden fields. The id is required.
func movieFromForm(r *http.Request) (movie.Movie, bool) {
	if err := r.ParseForm(); err != nil {
		return movie.Movie{}, false
	}
	id := strings.TrimSpace(r.PostFormValue("id"))
	if id == "" {
		return movie.Movie{}, false
	}
	year, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("year")))
	return movie.Movie{
		ID:     id,
		Title:  r.PostFormValue("title"),
		Year:   year,
		Poster: r.PostFormValue("poster"),
	}, true
}

// parsePage reads ?page=; anything missing or invalid means the first page.
func parsePage(q url.Values) int {
	n, err := strconv.Atoi(q.Get(pageQueryParam))
	if err != nil || n < movie.FirstPage {
		return movie.FirstPage
	}
	return n
}

func shellURL(page int) string {
	return moviesPath + "?" + url.Values{pageQueryParam: {strconv.Itoa(page)}}.Encode()
}

func gridURL(page int, mount bool) string {
	q := url.Values{pageQueryParam: {strconv.Itoa(page)}}
	if mount {
		q.Set(mountQueryParam, "1")
	}
	return moviesGridPath + "?" + q.Encode()
}

// buildPagination turns the view's pager into links that swap the grid in place.
func buildPagination(p gallery.Pager) viewmodel.Pagination {
	out := viewmodel.Pagination{
		Current: p.Current,
		Total:   p.Total,
		HasPrev: p.HasPrev,
		HasNext: p.HasNext,
		Pages:   make([]viewmodel.PageLink, 0, len(p.Pages)),
	}
	if p.HasPrev {
		out.PrevURL = gridURL(p.Current-1, false)
	}
	if p.HasNext {
		out.NextURL = gridURL(p.Current+1, false)
	}
	for _, n := range p.Pages {
		out.Pages = append(out.Pages, viewmodel.PageLink{Number: n, URL: gridURL(n, false), Current: n == p.Current})
	}
	return out
}
