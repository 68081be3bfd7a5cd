package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
	"flowrelay.ai/flow-api-gateway/app/utils/idgen"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
)

// Cached profile snapshots go stale after this window; staleness triggers a
// re-fetch, never an error.
const profileCacheTTL = 5 * time.Minute

// ErrNoPersonalToken indicates no bearer credential exists anywhere for the
// user. Callers surface a "configure your token" message, not a retry.
var ErrNoPersonalToken = errors.New("no personal auth token configured")

type UserService struct {
	userrepo UserRepository
	cache    cache.CacheService
}

func NewService(userrepo UserRepository, cacheService cache.CacheService) *UserService {
	return &UserService{
		userrepo: userrepo,
		cache:    cacheService,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, u *User) (*User, error) {
	publicID, err := idgen.GenerateSecureID("user", 16)
	if err != nil {
		return nil, err
	}
	u.PublicID = publicID
	if u.Role == "" {
		u.Role = RoleMember
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	if err := s.userrepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*User, error) {
	return s.userrepo.FindByID(ctx, id)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*User, error) {
	users, err := s.userrepo.FindByFilter(ctx, UserFilter{Username: &username})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	if len(users) != 1 {
		return nil, fmt.Errorf("duplicated username")
	}
	return users[0], nil
}

func (s *UserService) FindByFilter(ctx context.Context, filter UserFilter) ([]*User, error) {
	return s.userrepo.FindByFilter(ctx, filter)
}

// FindByPublicIDCached returns the profile snapshot from the session cache,
// falling back to the database within a 5-minute freshness window.
func (s *UserService) FindByPublicIDCached(ctx context.Context, publicID string) (*User, error) {
	key := fmt.Sprintf(cache.UserProfileKeyPattern, publicID)
	raw, err := s.cache.GetWithFallback(ctx, key, func() (string, error) {
		u, err := s.userrepo.FindByPublicID(ctx, publicID)
		if err != nil {
			return "", err
		}
		if u == nil {
			return "", fmt.Errorf("user not found: %s", publicID)
		}
		encoded, err := json.Marshal(u)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}, profileCacheTTL)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ResolvePersonalToken resolves the bearer credential for an upstream call.
// Order: explicit override, the profile snapshot in hand, then a database
// re-fetch that also refreshes the session cache.
func (s *UserService) ResolvePersonalToken(ctx context.Context, u *User, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if u == nil {
		return "", ErrNoPersonalToken
	}
	if u.PersonalAuthToken != "" {
		return u.PersonalAuthToken, nil
	}
	fresh, err := s.userrepo.FindByID(ctx, u.ID)
	if err != nil {
		return "", err
	}
	if fresh == nil || fresh.PersonalAuthToken == "" {
		return "", ErrNoPersonalToken
	}
	s.refreshProfileCache(ctx, fresh)
	u.PersonalAuthToken = fresh.PersonalAuthToken
	return fresh.PersonalAuthToken, nil
}

// UpdateTokens persists new credentials and invalidates the stale snapshot.
func (s *UserService) UpdateTokens(ctx context.Context, u *User, personalAuthToken, solverAPIKey *string) error {
	if personalAuthToken != nil {
		u.PersonalAuthToken = *personalAuthToken
	}
	if solverAPIKey != nil {
		u.SolverAPIKey = *solverAPIKey
	}
	if err := s.userrepo.Update(ctx, u); err != nil {
		return err
	}
	return s.cache.Delete(ctx, fmt.Sprintf(cache.UserProfileKeyPattern, u.PublicID))
}

func (s *UserService) refreshProfileCache(ctx context.Context, u *User) {
	encoded, err := json.Marshal(u)
	if err != nil {
		return
	}
	key := fmt.Sprintf(cache.UserProfileKeyPattern, u.PublicID)
	if err := s.cache.Set(ctx, key, string(encoded), profileCacheTTL); err != nil {
		logger.GetLogger().Warnf("failed to refresh profile cache: %v", err)
	}
}
