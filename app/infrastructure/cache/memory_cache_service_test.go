package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	m := NewMemoryCacheService()
	ctx := context.Background()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get(missing) err = %v, want ErrCacheMiss", err)
	}

	if err := m.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Get = (%q, %v)", got, err)
	}

	exists, err := m.Exists(ctx, "k")
	if err != nil || !exists {
		t.Errorf("Exists = (%v, %v)", exists, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after delete err = %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	m := NewMemoryCacheService()
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", 20*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expired entry still readable, err = %v", err)
	}
}

func TestMemoryCacheGetWithFallback(t *testing.T) {
	m := NewMemoryCacheService()
	ctx := context.Background()

	calls := 0
	fallback := func() (string, error) {
		calls++
		return "computed", nil
	}
	for i := 0; i < 3; i++ {
		got, err := m.GetWithFallback(ctx, "k", fallback, time.Minute)
		if err != nil || got != "computed" {
			t.Fatalf("GetWithFallback = (%q, %v)", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("fallback ran %d times, want 1", calls)
	}

	failing := func() (string, error) { return "", errors.New("source down") }
	if _, err := m.GetWithFallback(ctx, "other", failing, time.Minute); err == nil {
		t.Error("fallback failure was swallowed")
	}
}

func TestMemoryCacheNewMutexIsNil(t *testing.T) {
	m := NewMemoryCacheService()
	if m.NewMutex("lock") != nil {
		t.Error("in-process cache must not hand out distributed mutexes")
	}
}
