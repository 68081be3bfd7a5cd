package routes

import (
	"github.com/google/wire"

	v1 "flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/admin"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/auth"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/generations"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/payments"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/users"
)

var RoutesProvider = wire.NewSet(
	auth.NewAuthRoute,
	users.NewUsersRoute,
	generations.NewGenerationsRoute,
	payments.NewPaymentsRoute,
	admin.NewAdminRoute,
	v1.NewV1Route,
)
