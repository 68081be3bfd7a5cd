package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

type UsersRoute struct {
	authService *auth.AuthService
	userService *user.UserService
}

func NewUsersRoute(authService *auth.AuthService, userService *user.UserService) *UsersRoute {
	return &UsersRoute{
		authService: authService,
		userService: userService,
	}
}

func (route *UsersRoute) RegisterRouter(router gin.IRouter) {
	usersRouter := router.Group("/users",
		route.authService.JWTAuthMiddleware(),
		route.authService.RegisteredUserMiddleware(),
	)
	usersRouter.GET("/me", route.GetMe)
	usersRouter.PUT("/me/tokens", route.UpdateTokens)
}

type profileResult struct {
	PublicID         string `json:"public_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	HasAuthToken     bool   `json:"has_auth_token"`
	HasSolverKey     bool   `json:"has_solver_key"`
	AllowMasterToken *bool  `json:"allow_master_token"`
}

func (route *UsersRoute) GetMe(reqCtx *gin.Context) {
	u, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "14b7d9e2-60af-483c-95d1-7e2c80f63ba9",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[profileResult]{
		Status: responses.ResponseCodeOk,
		Result: profileResult{
			PublicID:         u.PublicID,
			Username:         u.Username,
			Email:            u.Email,
			Role:             u.Role,
			Status:           string(u.Status),
			HasAuthToken:     u.PersonalAuthToken != "",
			HasSolverKey:     u.SolverAPIKey != "",
			AllowMasterToken: u.AllowMasterToken,
		},
	})
}

type updateTokensRequest struct {
	PersonalAuthToken *string `json:"personal_auth_token"`
	SolverAPIKey      *string `json:"solver_api_key"`
}

func (route *UsersRoute) UpdateTokens(reqCtx *gin.Context) {
	u, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "be5c2f80-1d47-4a93-8c6e-05f9d71b34a2",
		})
		return
	}
	var request updateTokensRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d20a84c6-3b9f-45e1-a7d8-69c1f50e82b3",
			Error: err.Error(),
		})
		return
	}
	if err := route.userService.UpdateTokens(reqCtx.Request.Context(), u, request.PersonalAuthToken, request.SolverAPIKey); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "73e9f1b5-c28d-4065-9a43-d816e07c52f4",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: "updated",
	})
}
