// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultRedisAddr = "localhost:6379"

// RedisAddr returns the address used for Redis-backed tests.
// TEST_REDIS_ADDR wins over REDIS_ADDR; localhost is the fallback.
func RedisAddr() string {
	for _, key := range []string{"TEST_REDIS_ADDR", "REDIS_ADDR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return defaultRedisAddr
}

// SetupTestRedis connects to the test Redis and skips the test when it is unreachable,
// unless TEST_REQUIRE_REDIS is truthy. The client is closed on test cleanup.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	addr := RedisAddr()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: redisDB(t)})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if envBool("TEST_REQUIRE_REDIS") {
			t.Fatalf("Redis not available for testing at %s: %v", addr, err)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client
}

// KeyPrefix returns a unique key prefix so parallel packages never share keys.
func KeyPrefix(t testing.TB, name string) string {
	t.Helper()
	return fmt.Sprintf("test:%s:%s:", name, uuid.NewString())
}

// CleanupKeys removes every key under prefix when the test finishes.
func CleanupKeys(t testing.TB, client *redis.Client, prefix string) {
	t.Helper()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		iter := client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			_ = client.Del(ctx, iter.Val()).Err()
		}
		if err := iter.Err(); err != nil {
			t.Logf("warning: failed to clean redis keys %s*: %v", prefix, err)
		}
	})
}

func redisDB(t testing.TB) int {
	v := os.Getenv("TEST_REDIS_DB")
	if v == "" {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		t.Logf("Invalid TEST_REDIS_DB=%q, using DB 0", v)
		return 0
	}
	return i
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// FixedTimeFunc returns a clock that always reports t.
func FixedTimeFunc(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestTime returns a fixed instant for deterministic tests.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
