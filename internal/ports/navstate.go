package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNavStateNotFound is returned when a navigation-state token is unknown, expired or already consumed.
var ErrNavStateNotFound = errors.New("navigation state not found")

// NavStateStore holds transient payloads handed from one screen to the next.
// Payloads are scoped to a session, expire after ttl and can be taken only once.
type NavStateStore interface {
	Put(ctx context.Context, scope string, payload []byte, ttl time.Duration) (token string, err error)
	Take(ctx context.Context, scope, token string) ([]byte, error)
}
