// Package viewmodel holds the data shapes handed to the HTML templates.
package viewmodel

// Translator resolves message ids for the request's language.
type Translator interface {
	T(id string) string
	Lang() string
}

// User represents the signed-in user exposed to templates.
type User struct {
	Name  string
	Email string
}

// Toast is a transient notification rendered by the client-side toast area.
type Toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Toast types understood by app.js.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	Lang            string
	IsAuthenticated bool
	User            *User
	Flash           *Toast
	Translator      Translator
}

// T translates id, returning it unchanged when no translator is set.
func (l Layout) T(id string) string {
	if l.Translator == nil {
		return id
	}
	return l.Translator.T(id)
}

// LayoutData exposes the layout to renderer utilities.
func (l *Layout) LayoutData() *Layout { return l }

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
