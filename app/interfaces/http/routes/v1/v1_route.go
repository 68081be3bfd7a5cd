package v1

import (
	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/admin"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/auth"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/generations"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/payments"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/routes/v1/users"
)

type V1Route struct {
	authRoute        *auth.AuthRoute
	usersRoute       *users.UsersRoute
	generationsRoute *generations.GenerationsRoute
	paymentsRoute    *payments.PaymentsRoute
	adminRoute       *admin.AdminRoute
}

func NewV1Route(
	authRoute *auth.AuthRoute,
	usersRoute *users.UsersRoute,
	generationsRoute *generations.GenerationsRoute,
	paymentsRoute *payments.PaymentsRoute,
	adminRoute *admin.AdminRoute,
) *V1Route {
	return &V1Route{
		authRoute:        authRoute,
		usersRoute:       usersRoute,
		generationsRoute: generationsRoute,
		paymentsRoute:    paymentsRoute,
		adminRoute:       adminRoute,
	}
}

func (route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	route.authRoute.RegisterRouter(v1Router)
	route.usersRoute.RegisterRouter(v1Router)
	route.generationsRoute.RegisterRouter(v1Router)
	route.paymentsRoute.RegisterRouter(v1Router)
	route.adminRoute.RegisterRouter(v1Router)
}
