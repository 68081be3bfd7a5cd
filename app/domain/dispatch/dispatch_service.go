package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"flowrelay.ai/flow-api-gateway/app/domain/captcha"
	"flowrelay.ai/flow-api-gateway/app/domain/media"
	"flowrelay.ai/flow-api-gateway/app/domain/serverpool"
	"flowrelay.ai/flow-api-gateway/app/domain/slot"
	"flowrelay.ai/flow-api-gateway/app/domain/subscription"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/mediarelay"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
)

// Service orchestrates one upstream request: relay selection, credential
// and CAPTCHA resolution, account gating, slot accounting, execution and
// failure classification. It never retries and never writes the profile.
type Service struct {
	servers     serverResolver
	captchas    captchaResolver
	tokens      tokenResolver
	slots       slotAcquirer
	ultra       ultraChecker
	relay       relayCaller
	assignments AssignmentRecorder
	config      Config
}

func NewService(
	pool *serverpool.Service,
	captchaService *captcha.Service,
	userService *user.UserService,
	slotService *slot.Service,
	subscriptionService *subscription.Service,
	relayClient *mediarelay.Client,
	assignments AssignmentRecorder,
	config Config,
) *Service {
	return newService(pool, captchaService, userService, slotService, subscriptionService, relayClient, assignments, config)
}

func newService(
	servers serverResolver,
	captchas captchaResolver,
	tokens tokenResolver,
	slots slotAcquirer,
	ultra ultraChecker,
	relay relayCaller,
	assignments AssignmentRecorder,
	config Config,
) *Service {
	return &Service{
		servers:     servers,
		captchas:    captchas,
		tokens:      tokens,
		slots:       slots,
		ultra:       ultra,
		relay:       relay,
		assignments: assignments,
		config:      config,
	}
}

func (s *Service) Execute(ctx context.Context, params ExecuteParams) (*Result, error) {
	serverURL := s.servers.Resolve(ctx, params.SessionID, params.ServerOverride, params.ClientHost)

	if params.Operation.Captcha {
		token, err := s.captchas.ResolveToken(ctx, params.Operation, params.User)
		if err != nil {
			// Best effort: some backend paths tolerate a missing token.
			logger.GetLogger().WithFields(logrus.Fields{
				"error_code": "b2c61e0a-93d4-4a8f-b1f5-4e07d8a6c320",
				"path":       params.Path,
			}).Warnf("captcha resolution failed: %v", err)
		} else if token.Value != "" && params.ClientContext != nil {
			source := "user"
			if token.Master {
				source = "master"
			}
			params.ClientContext.RecaptchaContext = &media.RecaptchaContext{
				Token:  token.Value,
				Source: source,
			}
		}
	}

	if params.Operation.Generation {
		granted, err := s.slots.Acquire(ctx, serverURL, s.config.SlotCooldown)
		if err != nil {
			logger.GetLogger().Warnf("slot acquisition error for %s: %v", serverURL, err)
		} else if !granted {
			// Soft admission control only.
			logger.GetLogger().WithField("server", serverURL).Info("generation slot not granted, proceeding anyway")
		}
	}

	bearer, err := s.tokens.ResolvePersonalToken(ctx, params.User, params.TokenOverride)
	if err != nil {
		if errors.Is(err, user.ErrNoPersonalToken) {
			return nil, s.fail(params, NewError(FailureAuthenticationRequired,
				"no auth token configured, add your personal token in settings"))
		}
		return nil, s.fail(params, NewError(FailureAuthenticationRequired, err.Error()))
	}

	if derr := s.preflight(ctx, params); derr != nil {
		return nil, s.fail(params, derr)
	}

	go s.recordAssignment(params.User, serverURL, params.Operation.Kind)

	username := ""
	if params.User != nil {
		username = params.User.Username
	}
	resp, err := s.relay.Post(ctx, serverURL, string(params.Operation.Kind), params.Path, bearer, username, params.Body)
	if err != nil {
		return nil, s.fail(params, NewError(FailureNetwork, err.Error()))
	}

	payload := parsePayload(resp)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{
			Data:       payload,
			TokenUsed:  bearer,
			ServerUsed: serverURL,
		}, nil
	}

	derr := classify(resp.StatusCode, upstreamMessage(payload, resp))
	return nil, s.fail(params, derr)
}

// preflight gates the request on account state before any upstream call.
func (s *Service) preflight(ctx context.Context, params ExecuteParams) *Error {
	u := params.User
	if u == nil {
		return NewError(FailureAccountInactive, "no account in request context")
	}
	if u.Status == user.StatusInactive {
		return NewError(FailureAccountInactive, "account is inactive")
	}
	if u.Status == user.StatusSubscription && u.SubscriptionExpiresAt != nil && u.SubscriptionExpiresAt.Before(time.Now()) {
		return NewError(FailureSubscriptionExpired, "subscription has expired")
	}
	if s.config.RequireUltraRegistration && params.Operation.PersonalKeyOnly {
		// Always re-validate at request time; the cached verdict is only
		// trusted on read paths.
		active, err := s.ultra.IsUltraActive(ctx, u.ID, true)
		if err != nil {
			return NewError(FailureSubscriptionNotActive, fmt.Sprintf("could not verify ultra registration: %v", err))
		}
		if !active {
			return NewError(FailureSubscriptionNotActive, "ultra registration missing or inactive")
		}
	}
	return nil
}

func (s *Service) recordAssignment(u *user.User, serverURL string, kind media.ServiceKind) {
	if u == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.assignments.Record(ctx, &Assignment{
		UserID:    u.ID,
		Username:  u.Username,
		ServerURL: serverURL,
		Kind:      kind,
	})
	if err != nil {
		// Analytics only, never affects the primary operation.
		logger.GetLogger().Debugf("assignment record failed: %v", err)
	}
}

// fail emits the diagnostic log entry, skipping expected content-policy
// feedback and pinned follow-up steps (which would duplicate step one's
// entry).
func (s *Service) fail(params ExecuteParams, derr *Error) *Error {
	if derr.Kind == FailureContentRejected || params.TokenOverride != "" {
		return derr
	}
	fields := logrus.Fields{
		"error_code": "f4a8c1d6-2e9b-47f3-a0c5-8b16d3e97a42",
		"kind":       string(derr.Kind),
		"operation":  string(params.Operation.Kind),
		"path":       params.Path,
	}
	if params.User != nil {
		fields["user_id"] = params.User.ID
	}
	logger.GetLogger().WithFields(fields).Warn(derr.Message)
	return derr
}

func parsePayload(resp *mediarelay.Response) map[string]any {
	var payload map[string]any
	if err := json.Unmarshal(resp.Body, &payload); err != nil || payload == nil {
		snippet := string(resp.Body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		payload = map[string]any{
			"error": map[string]any{
				"message": fmt.Sprintf("non-JSON response (%d): %s", resp.StatusCode, snippet),
			},
		}
	}
	return payload
}

func upstreamMessage(payload map[string]any, resp *mediarelay.Response) string {
	if errObj, ok := payload["error"].(map[string]any); ok {
		if msg, ok := errObj["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}
	snippet := string(resp.Body)
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	if snippet == "" {
		return fmt.Sprintf("upstream returned %d", resp.StatusCode)
	}
	return snippet
}

// classify maps a non-2xx upstream response onto the failure taxonomy.
// Status codes win; message text catches backends that wrap auth and
// safety failures in 200-family-adjacent codes.
func classify(status int, message string) *Error {
	lower := strings.ToLower(message)
	switch {
	case status == 401,
		strings.Contains(lower, "unauthenticated"),
		strings.Contains(lower, "invalid credential"),
		strings.Contains(lower, "invalid authentication"):
		return &Error{Kind: FailureAuthenticationFailed, Message: message, Status: status}
	case status == 400,
		strings.Contains(lower, "safety"),
		strings.Contains(lower, "content policy"),
		strings.Contains(lower, "prominent people"),
		strings.Contains(lower, "violat"):
		return &Error{Kind: FailureContentRejected, Message: message, Status: status}
	default:
		return &Error{Kind: FailureUpstream, Message: message, Status: status}
	}
}
