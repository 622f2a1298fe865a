package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
	"github.com/target/movie-gallery/internal/service"
)

// AuthServiceInterface defines the auth operations used by the HTTP layer.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, in service.CompleteLoginInput) (domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers runs the sign-in flow.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	// AuthRoute is where failed sign-ins land; defaults to /auth.
	AuthRoute string
	Logger    *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *AuthHandlers) cookies() cookieSetter { return cookieSetter{Domain: h.CookieDomain} }

func (h *AuthHandlers) authRoute() string {
	if h.AuthRoute != "" {
		return h.AuthRoute
	}
	return "/auth"
}

// Login starts the provider flow.
// GET /auth/login?redirect_uri=<optional relative path>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	if redirectURI == "/" {
		redirectURI = moviesPath
	}

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "begin login failed", "error", err)
		h.fail(w, r, http.StatusInternalServerError, "login_failed", err)
		return
	}

	c := h.cookies()
	c.set(w, r, cookieSpec{Name: stateCookieName, Value: result.State, MaxAge: oauthCookieTTL})
	c.set(w, r, cookieSpec{Name: nonceCookieName, Value: result.Nonce, MaxAge: oauthCookieTTL})
	c.set(w, r, cookieSpec{Name: redirectCookieName, Value: redirectURI, MaxAge: oauthCookieTTL})

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback completes the provider flow and starts a session.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code, state := q.Get("code"), q.Get("state")
	switch {
	case code == "":
		h.fail(w, r, http.StatusBadRequest, "missing_code", errors.New("authorization code is required"))
		return
	case state == "":
		h.fail(w, r, http.StatusBadRequest, "missing_state", errors.New("state parameter is required"))
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value != state {
		h.fail(w, r, http.StatusBadRequest, "invalid_state", errors.New("invalid or missing state parameter"))
		return
	}
	nonceCookie, err := r.Cookie(nonceCookieName)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "missing_nonce", errors.New("missing nonce parameter"))
		return
	}

	sess, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "login completion failed", "error", err)
		h.fail(w, r, http.StatusUnauthorized, "login_completion_failed", err)
		return
	}

	c := h.cookies()
	c.set(w, r, cookieSpec{Name: sessionCookieName, Value: sess.ID, MaxAge: time.Until(sess.ExpiresAt)})
	c.clear(w, r, stateCookieName)
	c.clear(w, r, nonceCookieName)

	target := moviesPath
	if rc, err := r.Cookie(redirectCookieName); err == nil {
		if p := safeRedirectPath(rc.Value); p != "/" {
			target = p
		}
		c.clear(w, r, redirectCookieName)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Status reports whether the caller holds a live session.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	ck, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	sess, err := h.Svc.GetSession(r.Context(), ck.Value)
	if err != nil {
		h.cookies().clear(w, r, sessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":    sess.UserID,
			"name":  sess.DisplayName(),
			"email": sess.Email,
		},
		"expires_at": sess.ExpiresAt,
	})
}

// fail sends browsers back to the auth screen with a toast and API clients a JSON error.
func (h *AuthHandlers) fail(w http.ResponseWriter, r *http.Request, code int, errCode string, err error) {
	if IsBrowserRequest(r) {
		tr := GetTranslatorFromContext(r.Context())
		h.cookies().setFlash(w, r, viewmodel.Toast{Message: tr.T("Auth.failed"), Type: viewmodel.ToastError})
		redirect(w, r, h.authRoute())
		return
	}
	WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: err})
}
