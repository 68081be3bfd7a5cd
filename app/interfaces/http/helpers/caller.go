package helpers

import (
	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/generation"
)

// CallerFromContext assembles the dispatcher caller identity from the
// authenticated request: profile entity, session ID from the claim, and
// the browser origin (used for local-dev relay preference).
func CallerFromContext(reqCtx *gin.Context) (generation.Caller, bool) {
	u, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		return generation.Caller{}, false
	}
	claim, ok := auth.GetUserClaimFromContext(reqCtx)
	if !ok {
		return generation.Caller{}, false
	}
	clientHost := reqCtx.Request.Header.Get("Origin")
	if clientHost == "" {
		clientHost = reqCtx.Request.Host
	}
	return generation.Caller{
		User:       u,
		SessionID:  claim.SessionID,
		ClientHost: clientHost,
	}, true
}
