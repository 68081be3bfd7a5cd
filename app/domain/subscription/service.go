package subscription

import (
	"context"
	"fmt"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
)

const ultraStatusCacheTTL = 5 * time.Minute

type Service struct {
	repo  RegistrationRepository
	cache cache.CacheService
}

func NewService(repo RegistrationRepository, cacheService cache.CacheService) *Service {
	return &Service{
		repo:  repo,
		cache: cacheService,
	}
}

// IsUltraActive reports whether the user holds an active ultra
// registration. forceRefresh bypasses the 5-minute cached verdict; the
// dispatcher pre-flight always re-validates at request time.
func (s *Service) IsUltraActive(ctx context.Context, userID uint, forceRefresh bool) (bool, error) {
	key := fmt.Sprintf(cache.UltraActiveKeyPattern, userID)

	if forceRefresh {
		active, err := s.lookupActive(ctx, userID)
		if err != nil {
			return false, err
		}
		_ = s.cache.Set(ctx, key, boolValue(active), ultraStatusCacheTTL)
		return active, nil
	}

	raw, err := s.cache.GetWithFallback(ctx, key, func() (string, error) {
		active, err := s.lookupActive(ctx, userID)
		if err != nil {
			return "", err
		}
		return boolValue(active), nil
	}, ultraStatusCacheTTL)
	if err != nil {
		return false, err
	}
	return raw == "1", nil
}

func (s *Service) Register(ctx context.Context, r *Registration) error {
	if err := s.repo.Create(ctx, r); err != nil {
		return err
	}
	return s.cache.Delete(ctx, fmt.Sprintf(cache.UltraActiveKeyPattern, r.UserID))
}

func (s *Service) lookupActive(ctx context.Context, userID uint) (bool, error) {
	registration, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return registration.IsActive(time.Now()), nil
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
