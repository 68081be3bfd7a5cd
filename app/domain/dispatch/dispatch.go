package dispatch

import (
	"context"
	"time"

	"flowrelay.ai/flow-api-gateway/app/domain/captcha"
	"flowrelay.ai/flow-api-gateway/app/domain/media"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/mediarelay"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

// ExecuteParams describes one network step of a logical operation.
// TokenOverride/ServerOverride pin multi-step flows to the (token, server)
// pair the first step resolved; uploads are only addressable within that
// scope upstream.
type ExecuteParams struct {
	Operation media.Operation
	// Relative path under /api/{kind}, e.g. "/video:generate".
	Path string
	Body any
	// Points into Body; the dispatcher injects the solved-challenge
	// context here so it serializes inside clientContext.
	ClientContext *media.ClientContext

	User       *user.User
	SessionID  string
	ClientHost string

	TokenOverride  string
	ServerOverride string
}

// Result carries the parsed payload plus the credentials actually used, so
// multi-step callers can pin them for subsequent steps.
type Result struct {
	Data       map[string]any
	TokenUsed  string
	ServerUsed string
}

type serverResolver interface {
	Resolve(ctx context.Context, sessionID, override, clientHost string) string
}

type captchaResolver interface {
	ResolveToken(ctx context.Context, op media.Operation, u *user.User) (captcha.Token, error)
}

type tokenResolver interface {
	ResolvePersonalToken(ctx context.Context, u *user.User, override string) (string, error)
}

type slotAcquirer interface {
	Acquire(ctx context.Context, serverURL string, cooldown time.Duration) (bool, error)
}

type ultraChecker interface {
	IsUltraActive(ctx context.Context, userID uint, forceRefresh bool) (bool, error)
}

type relayCaller interface {
	Post(ctx context.Context, serverURL, kind, path, token, username string, body any) (*mediarelay.Response, error)
}

// Assignment is the fire-and-forget analytics record of which relay served
// a user's request.
type Assignment struct {
	UserID    uint
	Username  string
	ServerURL string
	Kind      media.ServiceKind
}

type AssignmentRecorder interface {
	Record(ctx context.Context, a *Assignment) error
}

// Config captures the per-deployment knobs the dispatcher branches on.
type Config struct {
	// Premium-brand deployments gate ultra operations on an active
	// registration.
	RequireUltraRegistration bool
	SlotCooldown             time.Duration
}

func NewConfig() Config {
	return Config{
		RequireUltraRegistration: environment_variables.EnvironmentVariables.DEPLOYMENT_BRAND != captcha.BrandLite,
		SlotCooldown:             0,
	}
}
