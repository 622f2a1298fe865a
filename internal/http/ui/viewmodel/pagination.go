package viewmodel

// PageLink is one numbered entry of the pager.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Pagination drives the gallery pager. Total counts pages, not movies.
type Pagination struct {
	Current int
	Total   int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
	Pages   []PageLink
}

// Visible reports whether the pager has anything to show.
func (p Pagination) Visible() bool { return p.Total > 0 }
