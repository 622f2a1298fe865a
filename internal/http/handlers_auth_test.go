package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/movie-gallery/internal/adapters/memstore"
	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
	mockauth "github.com/target/movie-gallery/internal/mocks/auth"
	"github.com/target/movie-gallery/internal/ports"
	"github.com/target/movie-gallery/internal/service"
)

func newAuthHandlers(provider ports.AuthProvider) (*AuthHandlers, *memstore.SessionStore) {
	store := memstore.NewSessionStore()
	svc := service.NewAuthService(service.AuthServiceOptions{Provider: provider, Sessions: store})
	return &AuthHandlers{Svc: svc}, store
}

func apiRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "application/json")
	return r
}

func TestAuthHandlers_Login_SetsFlowCookies(t *testing.T) {
	h, _ := newAuthHandlers(mockauth.NewMockAuthProvider())

	w := httptest.NewRecorder()
	h.Login(w, apiRequest(http.MethodGet, "/auth/login?redirect_uri=%2Fapp%2Fmovies%3Fpage%3D2"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://mock-idp/auth", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotNil(t, findCookie(cookies, stateCookieName))
	assert.Equal(t, "state-1", findCookie(cookies, stateCookieName).Value)
	assert.Equal(t, "nonce-1", findCookie(cookies, nonceCookieName).Value)
	assert.Equal(t, "/app/movies?page=2", findCookie(cookies, redirectCookieName).Value)
}

func TestAuthHandlers_Login_RejectsOffsiteRedirect(t *testing.T) {
	h, _ := newAuthHandlers(mockauth.NewMockAuthProvider())

	w := httptest.NewRecorder()
	h.Login(w, apiRequest(http.MethodGet, "/auth/login?redirect_uri="+url.QueryEscape("https://evil.example")))

	assert.Equal(t, moviesPath, findCookie(w.Result().Cookies(), redirectCookieName).Value)
}

func TestAuthHandlers_Callback_CreatesSession(t *testing.T) {
	h, store := newAuthHandlers(mockauth.NewMockAuthProvider())

	r := apiRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1")
	r.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	r.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "nonce-1"})
	r.AddCookie(&http.Cookie{Name: redirectCookieName, Value: "/app/movies?page=2"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/app/movies?page=2", w.Header().Get("Location"))

	sc := findCookie(w.Result().Cookies(), sessionCookieName)
	require.NotNil(t, sc)
	assert.True(t, sc.HttpOnly)
	sess, err := store.Get(context.Background(), sc.Value)
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", sess.UserID)
}

func TestAuthHandlers_Callback_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		cookies []*http.Cookie
		errCode string
	}{
		{name: "missing code", target: "/auth/callback?state=s", errCode: "missing_code"},
		{name: "missing state", target: "/auth/callback?code=c", errCode: "missing_state"},
		{name: "state mismatch", target: "/auth/callback?code=c&state=s", cookies: []*http.Cookie{{Name: stateCookieName, Value: "other"}}, errCode: "invalid_state"},
		{name: "missing nonce", target: "/auth/callback?code=c&state=s", cookies: []*http.Cookie{{Name: stateCookieName, Value: "s"}}, errCode: "missing_nonce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newAuthHandlers(mockauth.NewMockAuthProvider())
			r := apiRequest(http.MethodGet, tt.target)
			for _, c := range tt.cookies {
				r.AddCookie(c)
			}
			w := httptest.NewRecorder()
			h.Callback(w, r)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errCode)
		})
	}
}

func TestAuthHandlers_Callback_BrowserFailureFlashesAndReturnsToAuth(t *testing.T) {
	provider := mockauth.NewMockAuthProvider()
	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("idp rejected code")
	}
	h, _ := newAuthHandlers(provider)

	r := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c&state=s", nil)
	r.Header.Set("Accept", "text/html")
	r.AddCookie(&http.Cookie{Name: stateCookieName, Value: "s"})
	r.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "n"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
	assert.Nil(t, findCookie(w.Result().Cookies(), sessionCookieName))

	flash := findCookie(w.Result().Cookies(), flashCookieName)
	require.NotNil(t, flash)
	next := httptest.NewRequest(http.MethodGet, "/auth", nil)
	next.AddCookie(flash)
	toast := cookieSetter{}.takeFlash(httptest.NewRecorder(), next)
	require.NotNil(t, toast)
	assert.Equal(t, viewmodel.ToastError, toast.Type)
}

func TestAuthHandlers_Status(t *testing.T) {
	h, _ := newAuthHandlers(mockauth.NewMockAuthProvider())
	sess, err := h.Svc.CompleteLogin(context.Background(), service.CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	r := apiRequest(http.MethodGet, "/auth/status")
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	h.Status(w, r)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"name":"Mock User"`)

	w = httptest.NewRecorder()
	h.Status(w, apiRequest(http.MethodGet, "/auth/status"))
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestFlashCookie_RoundTrip(t *testing.T) {
	c := cookieSetter{}
	w := httptest.NewRecorder()
	c.setFlash(w, httptest.NewRequest(http.MethodGet, "/", nil), viewmodel.Toast{Message: "Saved <ok>", Type: viewmodel.ToastSuccess})

	flash := findCookie(w.Result().Cookies(), flashCookieName)
	require.NotNil(t, flash)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(flash)
	w = httptest.NewRecorder()
	toast := c.takeFlash(w, r)
	require.NotNil(t, toast)
	assert.Equal(t, "Saved <ok>", toast.Message)
	assert.Negative(t, findCookie(w.Result().Cookies(), flashCookieName).MaxAge, "flash is cleared once read")

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%"})
	assert.Nil(t, c.takeFlash(httptest.NewRecorder(), r))
}
