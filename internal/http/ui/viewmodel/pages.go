package viewmodel

import "github.com/target/movie-gallery/internal/domain/movie"

// MoviesPage is the gallery shell; the grid is fetched separately.
type MoviesPage struct {
	Layout
	Page      int
	GridURL   string
	CreateURL string
}

// MovieCard is one poster in the grid.
type MovieCard struct {
	movie.Movie
}

// Grid is the rendered gallery in its ready state.
type Grid struct {
	Layout
	Page   int
	Total  int
	Movies []MovieCard
	Pager  Pagination
}

// EmptyListPage is shown when the gallery has nothing to display.
type EmptyListPage struct {
	Layout
	CreateURL string
}

// MovieFormPage backs both the create and edit screens.
type MovieFormPage struct {
	Layout
	Movie   movie.Movie
	Update  bool
	BackURL string
}

// AuthPage is the sign-in entry screen.
type AuthPage struct {
	Layout
	LoginURL string
}

// ErrorPage renders 404 and other error screens.
type ErrorPage struct {
	Layout
	Code    int
	Message string
	BackURL string
}
