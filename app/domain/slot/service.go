package slot

import (
	"context"
	"fmt"
	"time"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
)

// DefaultCooldown is the soft per-server spacing between generation
// requests. Acquisition is advisory: a denied slot is logged and ignored,
// never a hard queue.
const DefaultCooldown = 10 * time.Second

type Service struct {
	cache cache.CacheService
}

func NewService(cacheService cache.CacheService) *Service {
	return &Service{cache: cacheService}
}

// Acquire attempts to take the generation slot for a relay server. The
// check-then-set runs under a distributed mutex when the cache backend
// provides one; desktop builds skip the lock.
func (s *Service) Acquire(ctx context.Context, serverURL string, cooldown time.Duration) (bool, error) {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	if mutex := s.cache.NewMutex(fmt.Sprintf(cache.SlotLockKeyPattern, serverURL)); mutex != nil {
		if err := mutex.LockContext(ctx); err != nil {
			return false, err
		}
		defer func() {
			_, _ = mutex.UnlockContext(ctx)
		}()
	}

	key := fmt.Sprintf(cache.SlotCooldownKeyPattern, serverURL)
	taken, err := s.cache.Exists(ctx, key)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}
	if err := s.cache.Set(ctx, key, "1", cooldown); err != nil {
		return false, err
	}
	return true, nil
}
