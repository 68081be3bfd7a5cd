package captcha

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"flowrelay.ai/flow-api-gateway/app/domain/media"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/cache"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/solver"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

// Master tokens are shared across requests within this window; concurrent
// re-fetches on expiry are tolerated, the writes are idempotent.
const masterTokenCacheTTL = 5 * time.Minute

// Token is a solved-challenge token ready to embed in an upstream request.
type Token struct {
	Value  string
	Master bool
}

type solverAPI interface {
	Solve(ctx context.Context, apiKey string) (string, error)
}

type Service struct {
	policy    Policy
	solver    solverAPI
	cache     cache.CacheService
	masterKey string
}

func NewService(solverClient *solver.Client, cacheService cache.CacheService, policy Policy) *Service {
	return newService(solverClient, cacheService, policy,
		environment_variables.EnvironmentVariables.MASTER_SOLVER_API_KEY)
}

func newService(solverClient solverAPI, cacheService cache.CacheService, policy Policy, masterKey string) *Service {
	return &Service{
		policy:    policy,
		solver:    solverClient,
		cache:     cacheService,
		masterKey: masterKey,
	}
}

// ResolveToken obtains a solved-challenge token for a CAPTCHA-gated
// operation. An empty token is not an error: callers proceed without one
// and let the backend reject if it insists.
func (s *Service) ResolveToken(ctx context.Context, op media.Operation, u *user.User) (Token, error) {
	if !op.Captcha {
		return Token{}, nil
	}

	// Ultra generation carries its own CAPTCHA cost regardless of brand
	// or subscription tier.
	if op.PersonalKeyOnly {
		return s.personalToken(ctx, u)
	}

	if s.policy.WantsMasterKey(ctx, u) {
		token, err := s.masterToken(ctx)
		if err == nil && token.Value != "" {
			return token, nil
		}
		if err != nil {
			logger.GetLogger().WithFields(logrus.Fields{
				"error_code": "e3f1a0d2-6c4b-4f2e-9a76-1d8f0b5c2a91",
				"brand":      s.policy.Name(),
			}).Warnf("master solver token unavailable, falling back to personal key: %v", err)
		}
		// Substitution failed; the user's own key is better than failing
		// the whole operation.
	}

	return s.personalToken(ctx, u)
}

func (s *Service) masterToken(ctx context.Context) (Token, error) {
	if s.masterKey == "" {
		return Token{}, nil
	}
	value, err := s.cache.GetWithFallback(ctx, cache.MasterSolverTokenKey, func() (string, error) {
		return s.solver.Solve(ctx, s.masterKey)
	}, masterTokenCacheTTL)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: value, Master: true}, nil
}

func (s *Service) personalToken(ctx context.Context, u *user.User) (Token, error) {
	if u == nil || u.SolverAPIKey == "" {
		return Token{}, nil
	}
	value, err := s.solver.Solve(ctx, u.SolverAPIKey)
	if err != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"error_code": "7b9d42c8-0f5a-4f13-8d2e-6a91c3e07b54",
			"user_id":    u.ID,
		}).Warnf("personal solver call failed: %v", err)
		return Token{}, nil
	}
	return Token{Value: value}, nil
}
