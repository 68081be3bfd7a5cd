package subscription

import (
	"context"
	"testing"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
)

type fakeRegistrationRepo struct {
	byUserID map[uint]*Registration
	finds    int
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, r *Registration) error {
	if f.byUserID == nil {
		f.byUserID = map[uint]*Registration{}
	}
	f.byUserID[r.UserID] = r
	return nil
}

func (f *fakeRegistrationRepo) FindByUserID(ctx context.Context, userID uint) (*Registration, error) {
	f.finds++
	return f.byUserID[userID], nil
}

func TestIsUltraActiveCachesVerdict(t *testing.T) {
	repo := &fakeRegistrationRepo{byUserID: map[uint]*Registration{
		1: {UserID: 1, Plan: "ultra", Active: true},
	}}
	s := NewService(repo, cache.NewMemoryCacheService())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		active, err := s.IsUltraActive(ctx, 1, false)
		if err != nil {
			t.Fatalf("IsUltraActive: %v", err)
		}
		if !active {
			t.Fatal("active registration reported inactive")
		}
	}
	if repo.finds != 1 {
		t.Errorf("repository consulted %d times, want 1 (cached)", repo.finds)
	}
}

func TestIsUltraActiveForceRefresh(t *testing.T) {
	repo := &fakeRegistrationRepo{byUserID: map[uint]*Registration{
		1: {UserID: 1, Plan: "ultra", Active: true},
	}}
	s := NewService(repo, cache.NewMemoryCacheService())

	ctx := context.Background()
	if _, err := s.IsUltraActive(ctx, 1, false); err != nil {
		t.Fatalf("IsUltraActive: %v", err)
	}

	// Registration flips server-side; the cached verdict is now stale.
	repo.byUserID[1].Active = false

	active, err := s.IsUltraActive(ctx, 1, true)
	if err != nil {
		t.Fatalf("IsUltraActive: %v", err)
	}
	if active {
		t.Error("force refresh must bypass the cached verdict")
	}
	if repo.finds != 2 {
		t.Errorf("finds = %d", repo.finds)
	}

	// The refreshed verdict replaces the cached one.
	active, err = s.IsUltraActive(ctx, 1, false)
	if err != nil {
		t.Fatalf("IsUltraActive: %v", err)
	}
	if active {
		t.Error("refreshed verdict was not written back to the cache")
	}
}

func TestIsUltraActiveNoRegistration(t *testing.T) {
	s := NewService(&fakeRegistrationRepo{}, cache.NewMemoryCacheService())
	active, err := s.IsUltraActive(context.Background(), 9, false)
	if err != nil {
		t.Fatalf("IsUltraActive: %v", err)
	}
	if active {
		t.Error("missing registration reported active")
	}
}

func TestRegisterInvalidatesCache(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	s := NewService(repo, cache.NewMemoryCacheService())

	ctx := context.Background()
	if active, _ := s.IsUltraActive(ctx, 1, false); active {
		t.Fatal("unexpected active verdict")
	}

	if err := s.Register(ctx, &Registration{UserID: 1, Plan: "ultra", Active: true}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	active, err := s.IsUltraActive(ctx, 1, false)
	if err != nil {
		t.Fatalf("IsUltraActive: %v", err)
	}
	if !active {
		t.Error("registration must invalidate the cached verdict")
	}
}

func TestRegistrationIsActive(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		r    *Registration
		want bool
	}{
		{"nil", nil, false},
		{"inactive flag", &Registration{Active: false}, false},
		{"active no expiry", &Registration{Active: true}, true},
		{"active future expiry", &Registration{Active: true, ExpiresAt: &future}, true},
		{"active past expiry", &Registration{Active: true, ExpiresAt: &past}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsActive(now); got != tt.want {
				t.Errorf("IsActive = %v, want %v", got, tt.want)
			}
		})
	}
}
