package cache

import (
	"context"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// MemoryCacheService is an in-process CacheService used by desktop-packaged
// builds, which run without a Redis instance. Distributed locking degrades
// to no-op: NewMutex returns nil and callers skip the lock.
type MemoryCacheService struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryCacheService creates an empty in-process cache.
func NewMemoryCacheService() CacheService {
	return &MemoryCacheService{
		entries: map[string]memoryEntry{},
	}
}

func (m *MemoryCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryCacheService) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryCacheService) GetWithFallback(ctx context.Context, key string, fallback func() (string, error), expiration time.Duration) (string, error) {
	if val, err := m.Get(ctx, key); err == nil {
		return val, nil
	}
	value, err := fallback()
	if err != nil {
		return "", err
	}
	_ = m.Set(ctx, key, value, expiration)
	return value, nil
}

func (m *MemoryCacheService) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Get(ctx, key)
	if err == ErrCacheMiss {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCacheService) Close() error {
	return nil
}

func (m *MemoryCacheService) HealthCheck(ctx context.Context) error {
	return nil
}

func (m *MemoryCacheService) NewMutex(name string, options ...redsync.Option) *redsync.Mutex {
	return nil
}
