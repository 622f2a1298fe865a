package httpx

import (
	"context"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/i18n"
)

type (
	sessionKey    struct{}
	translatorKey struct{}
)

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the request context, or nil.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok {
		return s
	}
	return nil
}

// SetTranslatorInContext stores the request's translator.
func SetTranslatorInContext(ctx context.Context, tr *i18n.Translator) context.Context {
	if tr == nil {
		return ctx
	}
	return context.WithValue(ctx, translatorKey{}, tr)
}

// GetTranslatorFromContext returns the request's translator, or nil.
// A nil *i18n.Translator still works and echoes message ids.
func GetTranslatorFromContext(ctx context.Context) *i18n.Translator {
	tr, _ := ctx.Value(translatorKey{}).(*i18n.Translator)
	return tr
}
