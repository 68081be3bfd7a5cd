package user

import (
	"context"
	"errors"
	"testing"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
)

type fakeUserRepo struct {
	byID        map[uint]*User
	byPublicID  map[string]*User
	createErr   error
	updateCalls int
	findIDCalls int
}

func newFakeUserRepo(users ...*User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byID:       map[uint]*User{},
		byPublicID: map[string]*User{},
	}
	for _, u := range users {
		repo.byID[u.ID] = u
		repo.byPublicID[u.PublicID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uint(len(f.byID) + 1)
	f.byID[u.ID] = u
	f.byPublicID[u.PublicID] = u
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *User) error {
	f.updateCalls++
	f.byID[u.ID] = u
	f.byPublicID[u.PublicID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	f.findIDCalls++
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByPublicID(ctx context.Context, publicID string) (*User, error) {
	return f.byPublicID[publicID], nil
}

func (f *fakeUserRepo) FindByFilter(ctx context.Context, filter UserFilter) ([]*User, error) {
	var out []*User
	for _, u := range f.byID {
		if filter.Username != nil && u.Username != *filter.Username {
			continue
		}
		if filter.Status != nil && u.Status != *filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func TestRegisterUserDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	s := NewService(repo, cache.NewMemoryCacheService())

	created, err := s.RegisterUser(context.Background(), &User{Username: "alice", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if created.PublicID == "" {
		t.Error("PublicID not assigned")
	}
	if created.Role != RoleMember {
		t.Errorf("Role = %q", created.Role)
	}
	if created.Status != StatusActive {
		t.Errorf("Status = %q", created.Status)
	}
}

func TestResolvePersonalToken(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		repo := newFakeUserRepo()
		s := NewService(repo, cache.NewMemoryCacheService())

		token, err := s.ResolvePersonalToken(context.Background(), nil, "pinned")
		if err != nil {
			t.Fatalf("ResolvePersonalToken: %v", err)
		}
		if token != "pinned" {
			t.Errorf("token = %q", token)
		}
		if repo.findIDCalls != 0 {
			t.Error("override must not hit the database")
		}
	})

	t.Run("snapshot token used without a re-fetch", func(t *testing.T) {
		repo := newFakeUserRepo()
		s := NewService(repo, cache.NewMemoryCacheService())

		u := &User{ID: 1, PersonalAuthToken: "cached-token"}
		token, err := s.ResolvePersonalToken(context.Background(), u, "")
		if err != nil {
			t.Fatalf("ResolvePersonalToken: %v", err)
		}
		if token != "cached-token" {
			t.Errorf("token = %q", token)
		}
		if repo.findIDCalls != 0 {
			t.Error("snapshot hit must not trigger a database read")
		}
	})

	t.Run("stale snapshot triggers a re-fetch", func(t *testing.T) {
		fresh := &User{ID: 1, PublicID: "user_1", PersonalAuthToken: "fresh-token"}
		repo := newFakeUserRepo(fresh)
		s := NewService(repo, cache.NewMemoryCacheService())

		stale := &User{ID: 1, PublicID: "user_1"}
		token, err := s.ResolvePersonalToken(context.Background(), stale, "")
		if err != nil {
			t.Fatalf("ResolvePersonalToken: %v", err)
		}
		if token != "fresh-token" {
			t.Errorf("token = %q", token)
		}
		if repo.findIDCalls != 1 {
			t.Errorf("findIDCalls = %d", repo.findIDCalls)
		}
		if stale.PersonalAuthToken != "fresh-token" {
			t.Error("snapshot in hand was not refreshed")
		}
	})

	t.Run("no token anywhere", func(t *testing.T) {
		repo := newFakeUserRepo(&User{ID: 1, PublicID: "user_1"})
		s := NewService(repo, cache.NewMemoryCacheService())

		_, err := s.ResolvePersonalToken(context.Background(), &User{ID: 1, PublicID: "user_1"}, "")
		if !errors.Is(err, ErrNoPersonalToken) {
			t.Errorf("err = %v, want ErrNoPersonalToken", err)
		}
	})

	t.Run("nil user", func(t *testing.T) {
		s := NewService(newFakeUserRepo(), cache.NewMemoryCacheService())
		_, err := s.ResolvePersonalToken(context.Background(), nil, "")
		if !errors.Is(err, ErrNoPersonalToken) {
			t.Errorf("err = %v, want ErrNoPersonalToken", err)
		}
	})
}

func TestFindByPublicIDCached(t *testing.T) {
	u := &User{ID: 1, PublicID: "user_1", Username: "alice"}
	repo := newFakeUserRepo(u)
	memory := cache.NewMemoryCacheService()
	s := NewService(repo, memory)

	ctx := context.Background()
	first, err := s.FindByPublicIDCached(ctx, "user_1")
	if err != nil {
		t.Fatalf("FindByPublicIDCached: %v", err)
	}
	if first.Username != "alice" {
		t.Errorf("Username = %q", first.Username)
	}

	// Second read is served from the cache snapshot.
	u.Username = "renamed"
	second, err := s.FindByPublicIDCached(ctx, "user_1")
	if err != nil {
		t.Fatalf("FindByPublicIDCached: %v", err)
	}
	if second.Username != "alice" {
		t.Errorf("Username = %q, want the cached snapshot", second.Username)
	}

	if _, err := s.FindByPublicIDCached(ctx, "missing"); err == nil {
		t.Error("expected an error for an unknown public ID")
	}
}

func TestUpdateTokensInvalidatesSnapshot(t *testing.T) {
	u := &User{ID: 1, PublicID: "user_1", Username: "alice", PersonalAuthToken: "old"}
	repo := newFakeUserRepo(u)
	memory := cache.NewMemoryCacheService()
	s := NewService(repo, memory)

	ctx := context.Background()
	if _, err := s.FindByPublicIDCached(ctx, "user_1"); err != nil {
		t.Fatalf("FindByPublicIDCached: %v", err)
	}

	fresh := "new-token"
	if err := s.UpdateTokens(ctx, u, &fresh, nil); err != nil {
		t.Fatalf("UpdateTokens: %v", err)
	}
	if repo.updateCalls != 1 {
		t.Errorf("updateCalls = %d", repo.updateCalls)
	}

	reloaded, err := s.FindByPublicIDCached(ctx, "user_1")
	if err != nil {
		t.Fatalf("FindByPublicIDCached: %v", err)
	}
	if reloaded.PersonalAuthToken != "new-token" {
		t.Errorf("PersonalAuthToken = %q, snapshot was not invalidated", reloaded.PersonalAuthToken)
	}
}

func TestUpdateTokensPartial(t *testing.T) {
	u := &User{ID: 1, PublicID: "user_1", PersonalAuthToken: "token", SolverAPIKey: "key"}
	repo := newFakeUserRepo(u)
	s := NewService(repo, cache.NewMemoryCacheService())

	newKey := "rotated"
	if err := s.UpdateTokens(context.Background(), u, nil, &newKey); err != nil {
		t.Fatalf("UpdateTokens: %v", err)
	}
	if u.PersonalAuthToken != "token" {
		t.Errorf("PersonalAuthToken = %q, must be untouched", u.PersonalAuthToken)
	}
	if u.SolverAPIKey != "rotated" {
		t.Errorf("SolverAPIKey = %q", u.SolverAPIKey)
	}
}
