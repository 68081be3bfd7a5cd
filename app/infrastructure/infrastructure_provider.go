package infrastructure

import (
	"github.com/google/wire"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/mediarelay"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/openrouter"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/solver"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/toyyibpay"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	mediarelay.NewClient,
	solver.NewClient,
	openrouter.NewClient,
	toyyibpay.NewClient,
)
