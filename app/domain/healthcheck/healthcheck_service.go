package healthcheck

import (
	"context"

	"github.com/mileusna/crontab"

	"flowrelay.ai/flow-api-gateway/app/domain/serverpool"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/mediarelay"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

type HealthcheckCrontabService struct {
	RelayClient *mediarelay.Client
	ServerPool  *serverpool.Service
}

func NewService(relayClient *mediarelay.Client, pool *serverpool.Service) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		RelayClient: relayClient,
		ServerPool:  pool,
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) {
	hs.CheckRelayServers(ctx)
	// Check every 2 minutes instead of every minute
	ctab.AddJob("*/2 * * * *", func() {
		hs.CheckRelayServers(ctx)
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
}

func (hs *HealthcheckCrontabService) CheckRelayServers(ctx context.Context) {
	for _, server := range hs.ServerPool.Servers() {
		err := hs.RelayClient.Health(ctx, server.URL)
		hs.ServerPool.MarkHealth(server.URL, err == nil)
		if err != nil {
			logger.GetLogger().Warnf("relay %s (%s) unhealthy: %v", server.Label, server.URL, err)
		}
	}
}
