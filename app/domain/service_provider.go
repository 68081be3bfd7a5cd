package domain

import (
	"github.com/google/wire"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/captcha"
	"flowrelay.ai/flow-api-gateway/app/domain/dispatch"
	"flowrelay.ai/flow-api-gateway/app/domain/generation"
	"flowrelay.ai/flow-api-gateway/app/domain/payment"
	"flowrelay.ai/flow-api-gateway/app/domain/prompt"
	"flowrelay.ai/flow-api-gateway/app/domain/serverpool"
	"flowrelay.ai/flow-api-gateway/app/domain/slot"
	"flowrelay.ai/flow-api-gateway/app/domain/subscription"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
)

var ServiceProvider = wire.NewSet(
	auth.NewAuthService,
	user.NewService,
	subscription.NewService,
	serverpool.NewService,
	slot.NewService,
	captcha.NewPolicy,
	captcha.NewService,
	dispatch.NewConfig,
	dispatch.NewService,
	prompt.NewService,
	generation.NewService,
	payment.NewService,
)
