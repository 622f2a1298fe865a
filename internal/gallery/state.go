package gallery

import "github.com/target/movie-gallery/internal/domain/movie"

// Phase is the rendering state of the view.
type Phase string

const (
	// PhaseLoading shows the spinner and hides the grid.
	PhaseLoading Phase = "loading"
	// PhaseReady shows the grid and hides the spinner.
	PhaseReady Phase = "ready"
	// PhaseRedirected is terminal: the view navigated to the empty-state screen.
	PhaseRedirected Phase = "redirected"
)

// Outcome describes how a load settled.
type Outcome string

const (
	OutcomeApplied     Outcome = "applied"
	OutcomeRedirected  Outcome = "redirected"
	OutcomeSoftFailure Outcome = "soft_failure"
	OutcomeHardFailure Outcome = "hard_failure"
	OutcomeDiscarded   Outcome = "discarded"
)

// Failed reports whether the outcome surfaced an error notification.
func (o Outcome) Failed() bool {
	return o == OutcomeSoftFailure || o == OutcomeHardFailure
}

// State is an immutable snapshot of a View.
type State struct {
	Page       int
	PageSize   int
	Loading    bool
	Movies     []movie.Movie
	Total      int
	Phase      Phase
	Generation uint64
}

// PageCount returns ceil(Total / PageSize).
func (s State) PageCount() int {
	return movie.PageCount(s.Total, s.PageSize)
}

// Pager configures the pagination control. The control counts pages, not movies:
// each of its units is one already-divided page, so its own page size is always 1.
type Pager struct {
	Current  int
	Total    int
	PageSize int
	HasPrev  bool
	HasNext  bool
	Pages    []int
}

// Pager derives the pagination control settings from the snapshot.
func (s State) Pager() Pager {
	count := s.PageCount()
	pages := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		pages = append(pages, i)
	}
	return Pager{
		Current:  s.Page,
		Total:    count,
		PageSize: 1,
		HasPrev:  s.Page > movie.FirstPage && count > 0,
		HasNext:  s.Page < count,
		Pages:    pages,
	}
}
