// Package gallery implements the movie gallery view: it loads one page of movies at a time,
// tracks the loading flag, and mediates pagination, create/edit navigation and logout.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/target/movie-gallery/internal/domain/movie"
	"github.com/target/movie-gallery/internal/observability/statsd"
	"github.com/target/movie-gallery/internal/ports"
)

// Message keys resolved through the Translate option.
const (
	MsgError  = "MovieList.error"
	MsgLogout = "MovieList.logout"
)

// Notifier surfaces transient, user-visible notifications.
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

// Navigator moves the user to another screen, optionally handing over transient state.
type Navigator interface {
	Navigate(route string, state any)
}

// SessionService clears the locally held session identity.
type SessionService interface {
	RemoveCurrentUser(ctx context.Context) error
}

// Routes names the navigation targets used by the view.
type Routes struct {
	Empty  string
	Create string
	Edit   string
	Auth   string
}

// DefaultRoutes returns the routes served by the browser UI.
func DefaultRoutes() Routes {
	return Routes{
		Empty:  "/app/emptyList",
		Create: "/app/create",
		Edit:   "/app/edit",
		Auth:   "/auth",
	}
}

// EditState is the payload handed to the edit screen.
type EditState struct {
	Data   movie.Movie `json:"data"`
	Update bool        `json:"update"`
}

// Options groups the collaborators of a View.
type Options struct {
	Source    ports.MovieSource
	Notifier  Notifier
	Navigator Navigator
	Session   SessionService
	Routes    Routes
	// Translate resolves message keys; keys are used verbatim when nil.
	Translate func(key string) string
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// View holds the state of one gallery instance. It is safe for concurrent use;
// only the response to the most recently issued load may update the state.
type View struct {
	source    ports.MovieSource
	notifier  Notifier
	navigator Navigator
	session   SessionService
	routes    Routes
	translate func(string) string
	metrics   statsd.Sink
	logger    *slog.Logger

	mu         sync.Mutex
	page       int
	loading    bool
	movies     []movie.Movie
	total      int
	generation uint64
	mounted    bool
	phase      Phase
}

// New constructs an unmounted View.
func New(opts Options) (*View, error) {
	if opts.Source == nil {
		return nil, errors.New("gallery: movie source is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("gallery: notifier is required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("gallery: navigator is required")
	}

	routes := opts.Routes
	if routes == (Routes{}) {
		routes = DefaultRoutes()
	}
	translate := opts.Translate
	if translate == nil {
		translate = func(key string) string { return key }
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &View{
		source:    opts.Source,
		notifier:  opts.Notifier,
		navigator: opts.Navigator,
		session:   opts.Session,
		routes:    routes,
		translate: translate,
		metrics:   opts.Metrics,
		logger:    logger,
		page:      movie.FirstPage,
		phase:     PhaseLoading,
	}, nil
}

// Mount activates the view and loads the given page (the first page when page < 1).
func (v *View) Mount(ctx context.Context, page int) Outcome {
	v.mu.Lock()
	v.mounted = true
	v.mu.Unlock()
	return v.Load(ctx, page)
}

// Unmount deactivates the view; responses that resolve afterwards are discarded.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	v.loading = false
}

// ChangePage selects a new page index and loads it.
func (v *View) ChangePage(ctx context.Context, page int) Outcome {
	return v.Load(ctx, page)
}

// Load requests one page of movies and applies the result.
//
// The loading flag is raised before the request and cleared once the latest request settles.
// A response belonging to a superseded request, or arriving after Unmount, changes nothing.
func (v *View) Load(ctx context.Context, page int) Outcome {
	if page < movie.FirstPage {
		page = movie.FirstPage
	}

	gen, ok := v.begin(page)
	if !ok {
		return OutcomeDiscarded
	}

	start := time.Now()
	resp, err := v.source.GetMovies(ctx, movie.PageSize, page)

	outcome := v.settle(gen, resp, err)
	v.record(outcome, time.Since(start))

	switch outcome {
	case OutcomeRedirected:
		v.navigator.Navigate(v.routes.Empty, nil)
	case OutcomeSoftFailure, OutcomeHardFailure:
		if err != nil {
			v.logger.WarnContext(ctx, "movie fetch failed", "page", page, "error", err)
		}
		v.notifier.Error(v.translate(MsgError))
	case OutcomeApplied, OutcomeDiscarded:
	}
	return outcome
}

func (v *View) begin(page int) (uint64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted || v.phase == PhaseRedirected {
		return 0, false
	}
	v.page = page
	v.generation++
	v.loading = true
	v.phase = PhaseLoading
	return v.generation, true
}

func (v *View) settle(gen uint64, resp movie.FetchResponse, err error) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted || gen != v.generation || v.phase == PhaseRedirected {
		return OutcomeDiscarded
	}

	v.loading = false
	v.phase = PhaseReady

	switch {
	case err != nil:
		return OutcomeHardFailure
	case resp.Success && resp.Empty():
		v.phase = PhaseRedirected
		return OutcomeRedirected
	case resp.Success && resp.Data != nil:
		v.movies = slices.Clone(resp.Data.Movies)
		v.total = resp.Data.Total
		return OutcomeApplied
	default:
		return OutcomeSoftFailure
	}
}

func (v *View) record(outcome Outcome, elapsed time.Duration) {
	if v.metrics == nil {
		return
	}
	tags := map[string]string{"outcome": string(outcome)}
	v.metrics.Count("gallery.load", 1, tags)
	v.metrics.Timing("gallery.load.duration", elapsed, tags)
}

// NavigateCreate opens the creation screen.
func (v *View) NavigateCreate() {
	v.navigator.Navigate(v.routes.Create, nil)
}

// NavigateEdit opens the edit screen for m, handing over the record with the update flag set.
func (v *View) NavigateEdit(m movie.Movie) {
	v.navigator.Navigate(v.routes.Edit, EditState{Data: m, Update: true})
}

// Logout clears the session identity, confirms it to the user and moves to the auth screen.
func (v *View) Logout(ctx context.Context) error {
	if v.session == nil {
		return errors.New("gallery: session service is not configured")
	}
	if err := v.session.RemoveCurrentUser(ctx); err != nil {
		v.notifier.Error(v.translate(MsgError))
		return fmt.Errorf("remove current user: %w", err)
	}
	v.notifier.Success(v.translate(MsgLogout))
	v.navigator.Navigate(v.routes.Auth, nil)
	return nil
}

// PageCount returns the number of pages derived from the last applied total.
func (v *View) PageCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return movie.PageCount(v.total, movie.PageSize)
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return State{
		Page:       v.page,
		PageSize:   movie.PageSize,
		Loading:    v.loading,
		Movies:     slices.Clone(v.movies),
		Total:      v.total,
		Phase:      v.phase,
		Generation: v.generation,
	}
}
