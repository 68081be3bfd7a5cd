package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/dispatch"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

// AbortWithDispatchError maps the dispatcher failure taxonomy onto HTTP
// statuses for the UI layer.
func AbortWithDispatchError(reqCtx *gin.Context, code string, err error) {
	status := http.StatusInternalServerError
	kind := dispatch.KindOf(err)
	switch kind {
	case dispatch.FailureAuthenticationRequired, dispatch.FailureAuthenticationFailed:
		status = http.StatusUnauthorized
	case dispatch.FailureContentRejected:
		status = http.StatusBadRequest
	case dispatch.FailureAccountInactive,
		dispatch.FailureSubscriptionExpired,
		dispatch.FailureSubscriptionNotActive:
		status = http.StatusForbidden
	case dispatch.FailureUpstream:
		status = http.StatusBadGateway
	case dispatch.FailureNetwork:
		status = http.StatusGatewayTimeout
	}
	reqCtx.AbortWithStatusJSON(status, responses.ErrorResponse{
		Code:  code,
		Error: err.Error(),
		Kind:  string(kind),
	})
}
