package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type upper struct{}

func (upper) T(id string) string { return "T(" + id + ")" }
func (upper) Lang() string       { return "xx" }

func TestLayout_T(t *testing.T) {
	assert.Equal(t, "MovieList.error", Layout{}.T("MovieList.error"))
	assert.Equal(t, "T(MovieList.error)", Layout{Translator: upper{}}.T("MovieList.error"))

	page := Grid{Layout: Layout{Translator: upper{}}}
	assert.Equal(t, "T(x)", page.T("x"), "promoted through embedding")

	var p LayoutProvider = &page.Layout
	assert.Same(t, &page.Layout, p.LayoutData())
}

func TestPagination_Visible(t *testing.T) {
	assert.False(t, Pagination{}.Visible())
	assert.True(t, Pagination{Total: 1}.Visible())
}
