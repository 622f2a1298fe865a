// Package mocks provides gomock implementations of the ports used by the movie gallery.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	source := mocks.NewMockMovieSource(ctrl)
//	source.EXPECT().GetMovies(gomock.Any(), 8, 1).Return(resp, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=movie_source_mock.go github.com/target/movie-gallery/internal/ports MovieSource

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/target/movie-gallery/internal/ports SessionStore

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=navstate_store_mock.go github.com/target/movie-gallery/internal/ports NavStateStore
