//go:build wireinject

package main

import (
	"github.com/google/wire"

	"flowrelay.ai/flow-api-gateway/app/domain"
	"flowrelay.ai/flow-api-gateway/app/domain/healthcheck"
	"flowrelay.ai/flow-api-gateway/app/infrastructure"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/repository"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		infrastructure.InfrastructureProvider,
		repository.RepositoryProvider,
		domain.ServiceProvider,
		healthcheck.NewService,
		routes.RoutesProvider,
		http.NewHttpServer,
		NewDataInitializer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
