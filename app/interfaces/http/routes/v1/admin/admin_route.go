package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/subscription"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

// AdminRoute hosts the operator surface: account provisioning, account
// listing, and ultra-tier registration.
type AdminRoute struct {
	authService         *auth.AuthService
	userService         *user.UserService
	subscriptionService *subscription.Service
}

func NewAdminRoute(
	authService *auth.AuthService,
	userService *user.UserService,
	subscriptionService *subscription.Service,
) *AdminRoute {
	return &AdminRoute{
		authService:         authService,
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

func (route *AdminRoute) RegisterRouter(router gin.IRouter) {
	adminRouter := router.Group("/admin",
		route.authService.JWTAuthMiddleware(),
		route.authService.AdminUserMiddleware(),
	)
	adminRouter.GET("/users", route.ListUsers)
	adminRouter.POST("/users", route.CreateUser)
	adminRouter.POST("/registrations", route.RegisterUltra)
}

type adminUserResult struct {
	PublicID         string     `json:"public_id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"subscription_expires_at"`
	HasAuthToken     bool       `json:"has_auth_token"`
	AllowMasterToken *bool      `json:"allow_master_token"`
}

func toAdminUserResult(u *user.User) adminUserResult {
	return adminUserResult{
		PublicID:         u.PublicID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		Status:           string(u.Status),
		ExpiresAt:        u.SubscriptionExpiresAt,
		HasAuthToken:     u.PersonalAuthToken != "",
		AllowMasterToken: u.AllowMasterToken,
	}
}

func (route *AdminRoute) ListUsers(reqCtx *gin.Context) {
	filter := user.UserFilter{}
	if raw := reqCtx.Query("status"); raw != "" {
		status := user.Status(raw)
		filter.Status = &status
	}
	users, err := route.userService.FindByFilter(reqCtx.Request.Context(), filter)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "5c09e7a3-d148-4f26-b8e0-73a2d61f94c8",
			Error: err.Error(),
		})
		return
	}
	results := make([]adminUserResult, 0, len(users))
	for _, u := range users {
		results = append(results, toAdminUserResult(u))
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[adminUserResult]{
		Status:  responses.ResponseCodeOk,
		Total:   int64(len(results)),
		Results: results,
	})
}

type createUserRequest struct {
	Username              string     `json:"username" binding:"required"`
	Email                 string     `json:"email" binding:"required"`
	Password              string     `json:"password" binding:"required"`
	Role                  string     `json:"role"`
	Status                string     `json:"status"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`
	PersonalAuthToken     string     `json:"personal_auth_token"`
	SolverAPIKey          string     `json:"solver_api_key"`
	AllowMasterToken      *bool      `json:"allow_master_token"`
}

func (route *AdminRoute) CreateUser(reqCtx *gin.Context) {
	var request createUserRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "e4f82c07-1a95-4d63-b0c8-9d57a21e36f4",
			Error: err.Error(),
		})
		return
	}
	existing, err := route.userService.FindByUsername(reqCtx.Request.Context(), request.Username)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "2d61b9f8-40ea-4c75-a3d2-86c05e17f9b3",
			Error: err.Error(),
		})
		return
	}
	if existing != nil {
		reqCtx.AbortWithStatusJSON(http.StatusConflict, responses.ErrorResponse{
			Code:  "98a3d50c-76bf-4e21-8d49-b02c6f51e8a7",
			Error: "username already taken",
		})
		return
	}
	hashed, err := auth.HashPassword(request.Password)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "b07f4e21-c58a-4d96-83b1-e60d29a5f7c3",
			Error: err.Error(),
		})
		return
	}
	created, err := route.userService.RegisterUser(reqCtx.Request.Context(), &user.User{
		Username:              request.Username,
		Email:                 request.Email,
		PasswordHash:          hashed,
		Role:                  request.Role,
		Status:                user.Status(request.Status),
		SubscriptionExpiresAt: request.SubscriptionExpiresAt,
		PersonalAuthToken:     request.PersonalAuthToken,
		SolverAPIKey:          request.SolverAPIKey,
		AllowMasterToken:      request.AllowMasterToken,
	})
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "f3a90d56-28eb-4c17-9d80-4b65c02e81fa",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[adminUserResult]{
		Status: responses.ResponseCodeOk,
		Result: toAdminUserResult(created),
	})
}

type registerUltraRequest struct {
	PublicID  string     `json:"public_id" binding:"required"`
	Plan      string     `json:"plan" binding:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (route *AdminRoute) RegisterUltra(reqCtx *gin.Context) {
	var request registerUltraRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "07c5e9b2-d384-4a61-bf20-95d1c86e73a4",
			Error: err.Error(),
		})
		return
	}
	target, err := route.userService.FindByPublicIDCached(reqCtx.Request.Context(), request.PublicID)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  "61f0a8d3-29cb-4e57-8a94-c03e75d21b68",
			Error: err.Error(),
		})
		return
	}
	registration := &subscription.Registration{
		UserID:    target.ID,
		Plan:      request.Plan,
		Active:    true,
		ExpiresAt: request.ExpiresAt,
	}
	if err := route.subscriptionService.Register(reqCtx.Request.Context(), registration); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "ca26d4f9-80e5-4b73-9a01-6f58d3c2e7b4",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: "registered",
	})
}
