package ports

import (
	"context"

	"github.com/target/movie-gallery/internal/domain/movie"
)

// MovieSource reads pages of movies from the remote movie service.
// A well-formed but unsuccessful reply is reported through FetchResponse.Success;
// transport and decoding failures are returned as errors.
type MovieSource interface {
	GetMovies(ctx context.Context, limit, page int) (movie.FetchResponse, error)
}
