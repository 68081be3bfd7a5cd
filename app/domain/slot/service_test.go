package slot

import (
	"context"
	"testing"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
)

func TestAcquireCooldown(t *testing.T) {
	s := NewService(cache.NewMemoryCacheService())
	ctx := context.Background()

	granted, err := s.Acquire(ctx, "https://relay-a.example.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !granted {
		t.Fatal("first acquisition must be granted")
	}

	granted, err = s.Acquire(ctx, "https://relay-a.example.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if granted {
		t.Fatal("second acquisition within the cooldown must be denied")
	}

	// A different server has its own slot.
	granted, err = s.Acquire(ctx, "https://relay-b.example.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !granted {
		t.Fatal("slots are per server")
	}

	time.Sleep(60 * time.Millisecond)
	granted, err = s.Acquire(ctx, "https://relay-a.example.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !granted {
		t.Fatal("acquisition after the cooldown must be granted")
	}
}

func TestAcquireDefaultCooldown(t *testing.T) {
	s := NewService(cache.NewMemoryCacheService())
	ctx := context.Background()

	if granted, err := s.Acquire(ctx, "https://relay-a.example.com", 0); err != nil || !granted {
		t.Fatalf("Acquire = (%v, %v)", granted, err)
	}
	if granted, _ := s.Acquire(ctx, "https://relay-a.example.com", 0); granted {
		t.Fatal("zero cooldown must fall back to the default window")
	}
}
