package httpx

// CurrentPage identifiers used in templates and navigation.
const (
	PageMovies    = "movies"
	PageEmptyList = "empty-list"
	PageCreate    = "create-movie"
	PageEdit      = "edit-movie"
	PageAuth      = "auth"
	PageError     = "error"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
	StaticPathFromRoot   = "frontend/static"
)

// Cookie names.
const (
	sessionCookieName  = "session_id"
	stateCookieName    = "oauth_state"
	nonceCookieName    = "oauth_nonce"
	redirectCookieName = "post_login_redirect"
	flashCookieName    = "flash"
	langCookieName     = "lang"
)

// App routes that are not configurable.
const (
	moviesPath      = "/app/movies"
	moviesGridPath  = "/app/movies/grid"
	moviesEditPath  = "/app/movies/edit"
	moviesNewPath   = "/app/movies/new"
	logoutPath      = "/app/logout"
	loginPath       = "/auth/login"
	callbackPath    = "/auth/callback"
	toastEventName  = "showToast"
	navStateParam   = "state"
	pageQueryParam  = "page"
	mountQueryParam = "mount"
)

// ContentTemplateMap maps page identifiers to their content template names.
func ContentTemplateMap() map[string]string {
	return map[string]string{
		PageMovies:    "movies-content",
		PageEmptyList: "empty-list-content",
		PageCreate:    "movie-form-content",
		PageEdit:      "movie-form-content",
		PageAuth:      "auth-content",
		PageError:     "error-content",
	}
}

// ContentTemplateFor returns the content template for currentPage.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "movies-content"
}
