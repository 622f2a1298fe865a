package service

import (
	"context"
	"errors"
)

// SessionTerminator deletes a session by id. AuthService implements it.
type SessionTerminator interface {
	Logout(ctx context.Context, sessionID string) error
}

// CurrentUserRemover binds one request's session to a SessionTerminator
// so the gallery can sign the current user out without knowing about cookies.
type CurrentUserRemover struct {
	auth      SessionTerminator
	sessionID string
	removed   bool
}

// NewCurrentUserRemover returns a remover for sessionID.
func NewCurrentUserRemover(auth SessionTerminator, sessionID string) *CurrentUserRemover {
	return &CurrentUserRemover{auth: auth, sessionID: sessionID}
}

// RemoveCurrentUser deletes the bound session.
func (r *CurrentUserRemover) RemoveCurrentUser(ctx context.Context) error {
	if r.auth == nil {
		return errors.New("auth service is not configured")
	}
	if err := r.auth.Logout(ctx, r.sessionID); err != nil {
		return err
	}
	r.removed = true
	return nil
}

// Removed reports whether RemoveCurrentUser succeeded.
func (r *CurrentUserRemover) Removed() bool { return r.removed }
