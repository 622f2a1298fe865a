package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/target/movie-gallery/internal/ports"
)

// DefaultNavStatePrefix namespaces navigation-state keys.
const DefaultNavStatePrefix = "navstate:"

// NavStateStore keeps one-shot navigation payloads keyed by scope and token.
type NavStateStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.NavStateStore = (*NavStateStore)(nil)

// NewNavStateStore creates a store using DefaultNavStatePrefix.
func NewNavStateStore(client redis.UniversalClient) *NavStateStore {
	return NewNavStateStoreWithPrefix(client, DefaultNavStatePrefix)
}

// NewNavStateStoreWithPrefix creates a store with a custom key prefix.
func NewNavStateStoreWithPrefix(client redis.UniversalClient, prefix string) *NavStateStore {
	return &NavStateStore{client: client, prefix: prefix}
}

// Put stores payload under a fresh token for ttl.
func (s *NavStateStore) Put(ctx context.Context, scope string, payload []byte, ttl time.Duration) (string, error) {
	if scope == "" {
		return "", errors.New("navigation state scope cannot be empty")
	}
	if ttl <= 0 {
		return "", errors.New("navigation state ttl must be positive")
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(scope, token), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set navigation state: %w", err)
	}
	return token, nil
}

// Take returns and deletes the payload atomically so it can be read once.
func (s *NavStateStore) Take(ctx context.Context, scope, token string) ([]byte, error) {
	if scope == "" || token == "" {
		return nil, ports.ErrNavStateNotFound
	}

	data, err := s.client.GetDel(ctx, s.key(scope, token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNavStateNotFound
		}
		return nil, fmt.Errorf("redis getdel navigation state: %w", err)
	}
	return data, nil
}

func (s *NavStateStore) key(scope, token string) string {
	return s.prefix + scope + ":" + token
}
