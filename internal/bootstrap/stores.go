package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/target/movie-gallery/config"
	"github.com/target/movie-gallery/internal/adapters/memstore"
	redisadapter "github.com/target/movie-gallery/internal/adapters/redis"
	"github.com/target/movie-gallery/internal/ports"
)

// Stores groups the per-user state the UI keeps between requests.
type Stores struct {
	Sessions ports.SessionStore
	NavState ports.NavStateStore
}

// BuildStores backs sessions and edit hand-over state with Redis when a client is
// available and with process memory otherwise.
func BuildStores(cfg config.RedisConfig, client redis.UniversalClient) Stores {
	if client == nil {
		return Stores{
			Sessions: memstore.NewSessionStore(),
			NavState: memstore.NewNavStateStore(),
		}
	}
	return Stores{
		Sessions: redisadapter.NewSessionStoreWithPrefix(client, cfg.KeyPrefix+"session:"),
		NavState: redisadapter.NewNavStateStoreWithPrefix(client, cfg.KeyPrefix+"navstate:"),
	}
}
