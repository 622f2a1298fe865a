package httpx

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/target/movie-gallery/internal/http/ui/viewmodel"
)

const (
	oauthCookieTTL = 10 * time.Minute
	flashCookieTTL = time.Minute
)

// cookieSetter writes and clears the app's cookies with consistent attributes.
type cookieSetter struct {
	Domain string
}

type cookieSpec struct {
	Name   string
	Value  string
	MaxAge time.Duration
}

func (c cookieSetter) set(w http.ResponseWriter, r *http.Request, spec cookieSpec) {
	http.SetCookie(w, &http.Cookie{
		Name:     spec.Name,
		Value:    spec.Value,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(spec.MaxAge.Seconds()),
	})
}

// clear expires a cookie, mirroring the attributes used by set.
func (c cookieSetter) clear(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setFlash stores a toast to show on the next full page render.
func (c cookieSetter) setFlash(w http.ResponseWriter, r *http.Request, toast viewmodel.Toast) {
	if strings.TrimSpace(toast.Message) == "" {
		return
	}
	b, err := json.Marshal(toast)
	if err != nil {
		return
	}
	c.set(w, r, cookieSpec{Name: flashCookieName, Value: base64.RawURLEncoding.EncodeToString(b), MaxAge: flashCookieTTL})
}

// takeFlash reads and clears the pending toast, if any.
func (c cookieSetter) takeFlash(w http.ResponseWriter, r *http.Request) *viewmodel.Toast {
	ck, err := r.Cookie(flashCookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	c.clear(w, r, flashCookieName)

	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var toast viewmodel.Toast
	if err := json.Unmarshal(raw, &toast); err != nil || toast.Message == "" {
		return nil
	}
	return &toast
}
