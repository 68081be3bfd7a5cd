package captcha

import (
	"context"
	"time"

	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

// Brand identifiers for the two white-label deployments.
const (
	BrandLite   = "lite"
	BrandStudio = "studio"
)

// Policy decides whether a user's CAPTCHA challenges are solved with the
// platform's shared master key. One policy is selected per deployment at
// startup; the dispatcher never branches on brand strings.
type Policy interface {
	Name() string
	WantsMasterKey(ctx context.Context, u *user.User) bool
}

// SharedTierPolicy (brand "lite"): the shared-infrastructure tier always
// uses the master key.
type SharedTierPolicy struct{}

func (SharedTierPolicy) Name() string { return BrandLite }

func (SharedTierPolicy) WantsMasterKey(ctx context.Context, u *user.User) bool {
	return true
}

// PremiumTierPolicy (brand "studio"): users pay for their own solver keys
// by default; active subscribers get the master key unless explicitly
// blocked.
type PremiumTierPolicy struct{}

func (PremiumTierPolicy) Name() string { return BrandStudio }

func (PremiumTierPolicy) WantsMasterKey(ctx context.Context, u *user.User) bool {
	if u == nil {
		return false
	}
	if u.Status != user.StatusSubscription {
		return false
	}
	if u.SubscriptionExpiresAt != nil && u.SubscriptionExpiresAt.Before(time.Now()) {
		return false
	}
	return u.MayUseMasterKey()
}

// NewPolicy selects the policy for the configured deployment brand.
func NewPolicy() Policy {
	if environment_variables.EnvironmentVariables.DEPLOYMENT_BRAND == BrandLite {
		return SharedTierPolicy{}
	}
	return PremiumTierPolicy{}
}
