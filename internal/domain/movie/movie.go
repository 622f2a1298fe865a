package movie

// Package movie holds the read-only records exchanged with the remote movie service.

const (
	// PageSize is the fixed number of movies requested per gallery page.
	PageSize = 8
	// FirstPage is the initial (1-based) page index.
	FirstPage = 1
)

// Movie is an opaque display record owned by the remote movie service.
type Movie struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Poster string `json:"poster"`
}

// PageResult is one page of movies plus the total count across all pages.
type PageResult struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
}

// FetchResponse mirrors the remote contract: success flag plus optional data.
type FetchResponse struct {
	Success bool        `json:"success"`
	Data    *PageResult `json:"data,omitempty"`
}

// Empty reports whether the response carries a data block with zero movies.
func (r FetchResponse) Empty() bool {
	return r.Data != nil && len(r.Data.Movies) == 0
}

// PageCount returns ceil(total / pageSize), or 0 for non-positive inputs.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
