package generations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/generation"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/helpers"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

type GenerationsRoute struct {
	authService       *auth.AuthService
	generationService *generation.Service
}

func NewGenerationsRoute(authService *auth.AuthService, generationService *generation.Service) *GenerationsRoute {
	return &GenerationsRoute{
		authService:       authService,
		generationService: generationService,
	}
}

func (route *GenerationsRoute) RegisterRouter(router gin.IRouter) {
	generationsRouter := router.Group("/generations",
		route.authService.JWTAuthMiddleware(),
		route.authService.RegisteredUserMiddleware(),
	)
	generationsRouter.POST("/video", route.GenerateVideo)
	generationsRouter.POST("/image", route.GenerateImage)
	generationsRouter.POST("/transform", route.TransformImage)
	generationsRouter.GET("/status", route.PollStatus)
}

type generationResult struct {
	Data   map[string]any `json:"data"`
	Server string         `json:"server"`
}

type videoRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	AspectRatio   string `json:"aspect_ratio"`
	Model         string `json:"model"`
	Ultra         bool   `json:"ultra"`
	EnhancePrompt bool   `json:"enhance_prompt"`
}

func (route *GenerationsRoute) GenerateVideo(reqCtx *gin.Context) {
	caller, ok := helpers.CallerFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "4f61a8d0-27c3-49be-b5a2-e90d63c18f75",
		})
		return
	}
	var request videoRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "86c0d2e9-5b14-4f7a-93d6-207e8a1c5fb4",
			Error: err.Error(),
		})
		return
	}
	result, err := route.generationService.GenerateVideo(reqCtx.Request.Context(), caller, generation.VideoParams{
		Prompt:        request.Prompt,
		AspectRatio:   request.AspectRatio,
		Model:         request.Model,
		Ultra:         request.Ultra,
		EnhancePrompt: request.EnhancePrompt,
	})
	if err != nil {
		helpers.AbortWithDispatchError(reqCtx, "a95d30c7-e8f2-41b6-8d04-5c2e79f61a38", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[generationResult]{
		Status: responses.ResponseCodeOk,
		Result: generationResult{Data: result.Data, Server: result.ServerUsed},
	})
}

type imageRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	AspectRatio   string `json:"aspect_ratio"`
	ImageCount    int    `json:"image_count"`
	EnhancePrompt bool   `json:"enhance_prompt"`
}

func (route *GenerationsRoute) GenerateImage(reqCtx *gin.Context) {
	caller, ok := helpers.CallerFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "e7b3f5a9-1c60-4d28-94fe-b82d05c71e36",
		})
		return
	}
	var request imageRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "21f8a6d4-e973-4c05-b1d2-68a90e5f37cb",
			Error: err.Error(),
		})
		return
	}
	result, err := route.generationService.GenerateImage(reqCtx.Request.Context(), caller, generation.ImageParams{
		Prompt:        request.Prompt,
		AspectRatio:   request.AspectRatio,
		ImageCount:    request.ImageCount,
		EnhancePrompt: request.EnhancePrompt,
	})
	if err != nil {
		helpers.AbortWithDispatchError(reqCtx, "c48e61f0-9a2d-4b57-83c6-f15d07e92ab4", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[generationResult]{
		Status: responses.ResponseCodeOk,
		Result: generationResult{Data: result.Data, Server: result.ServerUsed},
	})
}

type transformRequest struct {
	MediaBytes string `json:"media_bytes" binding:"required"`
	MimeType   string `json:"mime_type" binding:"required"`
	Recipe     string `json:"recipe" binding:"required"`
	Prompt     string `json:"prompt"`
}

func (route *GenerationsRoute) TransformImage(reqCtx *gin.Context) {
	caller, ok := helpers.CallerFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "90d5c2b8-6e41-4a7f-bd39-07f8a2e65c13",
		})
		return
	}
	var request transformRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "3a7e90f2-d156-4c8b-a4d0-6b2c81f59e07",
			Error: err.Error(),
		})
		return
	}
	result, err := route.generationService.TransformImage(reqCtx.Request.Context(), caller, generation.TransformParams{
		MediaBytes: request.MediaBytes,
		MimeType:   request.MimeType,
		Recipe:     request.Recipe,
		Prompt:     request.Prompt,
	})
	if err != nil {
		helpers.AbortWithDispatchError(reqCtx, "6b02d8e4-f7a9-4531-bc68-d90e15a73f22", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[generationResult]{
		Status: responses.ResponseCodeOk,
		Result: generationResult{Data: result.Data, Server: result.ServerUsed},
	})
}

func (route *GenerationsRoute) PollStatus(reqCtx *gin.Context) {
	caller, ok := helpers.CallerFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "f31c6a05-82d9-4be7-a6f4-09c5d28e71b3",
		})
		return
	}
	operationName := reqCtx.Query("name")
	if operationName == "" {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "57a4e9c1-b3f0-4d26-8e95-1fd60c82a7b9",
			Error: "missing operation name",
		})
		return
	}
	result, err := route.generationService.PollStatus(reqCtx.Request.Context(), caller, operationName)
	if err != nil {
		helpers.AbortWithDispatchError(reqCtx, "08d2f6b7-4e93-4a01-bc58-72a1e90d5c46", err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[generationResult]{
		Status: responses.ResponseCodeOk,
		Result: generationResult{Data: result.Data, Server: result.ServerUsed},
	})
}
