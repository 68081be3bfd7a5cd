package repository

import (
	"github.com/google/wire"

	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/repository/assignmentrepo"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/repository/paymentrepo"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/repository/registrationrepo"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	registrationrepo.NewRegistrationGormRepository,
	assignmentrepo.NewAssignmentGormRepository,
	paymentrepo.NewPaymentGormRepository,
)
