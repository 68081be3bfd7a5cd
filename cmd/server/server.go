package main

import (
	"context"

	"github.com/mileusna/crontab"

	"flowrelay.ai/flow-api-gateway/app/domain/healthcheck"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/mediarelay"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/openrouter"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/solver"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/toyyibpay"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

type Application struct {
	HttpServer         *http.HttpServer
	DataInitializer    *DataInitializer
	HealthcheckService *healthcheck.HealthcheckCrontabService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	httpclients.Init()
	mediarelay.Init()
	solver.Init()
	openrouter.Init()
	toyyibpay.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	ctx := context.Background()
	if err := application.DataInitializer.Install(ctx); err != nil {
		panic(err)
	}
	cron := crontab.New()
	application.HealthcheckService.Start(ctx, cron)
	application.Start()
}
