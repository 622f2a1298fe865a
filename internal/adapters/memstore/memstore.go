// Package memstore provides in-process session and navigation-state stores
// for single-instance deployments and tests.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/target/movie-gallery/internal/domain/auth"
	"github.com/target/movie-gallery/internal/ports"
)

// SessionStore is a mutex-guarded map of sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session), now: time.Now}
}

// Save stores sess, replacing any previous value with the same id.
func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(s.now()) {
		return errors.New("session is expired")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns the session or ports.ErrSessionNotFound. Expired entries are evicted lazily.
func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type navEntry struct {
	payload []byte
	expires time.Time
}

// NavStateStore is a mutex-guarded one-shot payload store.
type NavStateStore struct {
	mu      sync.Mutex
	entries map[string]navEntry
	now     func() time.Time
}

// NewNavStateStore creates an empty store.
func NewNavStateStore() *NavStateStore {
	return &NavStateStore{entries: make(map[string]navEntry), now: time.Now}
}

// Put stores a copy of payload under a fresh token for ttl.
func (s *NavStateStore) Put(_ context.Context, scope string, payload []byte, ttl time.Duration) (string, error) {
	if scope == "" {
		return "", errors.New("navigation state scope cannot be empty")
	}
	if ttl <= 0 {
		return "", errors.New("navigation state ttl must be positive")
	}

	token := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(now)
	s.entries[scope+":"+token] = navEntry{payload: append([]byte(nil), payload...), expires: now.Add(ttl)}
	return token, nil
}

// Take returns and removes the payload.
func (s *NavStateStore) Take(_ context.Context, scope, token string) ([]byte, error) {
	key := scope + ":" + token

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, ports.ErrNavStateNotFound
	}
	delete(s.entries, key)
	if !s.now().Before(e.expires) {
		return nil, ports.ErrNavStateNotFound
	}
	return e.payload, nil
}

// sweep drops expired entries; callers hold mu.
func (s *NavStateStore) sweep(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
}
