package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

type AuthRoute struct {
	authService *authdomain.AuthService
}

func NewAuthRoute(authService *authdomain.AuthService) *AuthRoute {
	return &AuthRoute{
		authService: authService,
	}
}

func (route *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.POST("/login", route.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResult struct {
	Token    string `json:"token"`
	PublicID string `json:"public_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (route *AuthRoute) Login(reqCtx *gin.Context) {
	var request loginRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "5d18e2f7-9c04-4a6b-bd31-e87f52a60c49",
			Error: err.Error(),
		})
		return
	}
	token, u, err := route.authService.Login(reqCtx.Request.Context(), request.Username, request.Password)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code:  "0b93c6a1-47de-4f82-a5b9-3c61d08e94f7",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[loginResult]{
		Status: responses.ResponseCodeOk,
		Result: loginResult{
			Token:    token,
			PublicID: u.PublicID,
			Username: u.Username,
			Role:     u.Role,
		},
	})
}
