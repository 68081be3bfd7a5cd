package cache

import (
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration. Desktop
// builds ship without Redis and fall back to the in-process cache.
func NewCacheService() CacheService {
	if environment_variables.EnvironmentVariables.DESKTOP_MODE {
		return NewMemoryCacheService()
	}
	return NewRedisCacheService()
}
