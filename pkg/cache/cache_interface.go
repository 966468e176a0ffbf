package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Repositories depend on this
// interface so the Redis implementation can be swapped out in tests.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// found == false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
