package cache

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// CacheService defines the interface for session-scoped cache operations
type CacheService interface {
	// Set stores a string value in cache with an expiration time
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a string value from cache; ErrCacheMiss when absent
	Get(ctx context.Context, key string) (string, error)

	// GetWithFallback retrieves a string value from cache, or executes fallback function if not found
	GetWithFallback(ctx context.Context, key string, fallback func() (string, error), expiration time.Duration) (string, error)

	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection
	Close() error

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error

	// NewMutex returns a distributed mutex, or nil when the backend has no
	// locking support (single-process desktop builds)
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}
