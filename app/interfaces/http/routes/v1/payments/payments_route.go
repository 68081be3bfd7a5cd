package payments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/payment"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

type PaymentsRoute struct {
	authService    *auth.AuthService
	paymentService *payment.Service
}

func NewPaymentsRoute(authService *auth.AuthService, paymentService *payment.Service) *PaymentsRoute {
	return &PaymentsRoute{
		authService:    authService,
		paymentService: paymentService,
	}
}

func (route *PaymentsRoute) RegisterRouter(router gin.IRouter) {
	paymentsRouter := router.Group("/payments")
	// The gateway redirects the browser here after checkout; no session is
	// guaranteed at that point.
	paymentsRouter.GET("/return", route.HandleReturn)

	authedRouter := paymentsRouter.Group("",
		route.authService.JWTAuthMiddleware(),
		route.authService.RegisteredUserMiddleware(),
	)
	authedRouter.POST("", route.CreateBill)
	authedRouter.GET("", route.ListPayments)
}

type createBillRequest struct {
	AmountCents int    `json:"amount_cents" binding:"required"`
	Description string `json:"description" binding:"required"`
	ReturnURL   string `json:"return_url" binding:"required"`
	CallbackURL string `json:"callback_url"`
}

type billResult struct {
	PublicID    string `json:"public_id"`
	BillCode    string `json:"bill_code"`
	PayURL      string `json:"pay_url"`
	AmountCents int    `json:"amount_cents"`
	Status      string `json:"status"`
}

func (route *PaymentsRoute) CreateBill(reqCtx *gin.Context) {
	u, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "1ec8b0d5-f742-4a96-8b31-c67d09e25fa8",
		})
		return
	}
	var request createBillRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "b96f13a7-28cd-40e5-9d62-5a0e87c41fb3",
			Error: err.Error(),
		})
		return
	}
	record, payURL, err := route.paymentService.CreateBill(
		reqCtx.Request.Context(), u,
		request.AmountCents, request.Description,
		request.ReturnURL, request.CallbackURL,
	)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadGateway, responses.ErrorResponse{
			Code:  "42d7a0e9-61fb-4c83-bd25-980c3f6e17a4",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[billResult]{
		Status: responses.ResponseCodeOk,
		Result: billResult{
			PublicID:    record.PublicID,
			BillCode:    record.BillCode,
			PayURL:      payURL,
			AmountCents: record.AmountCents,
			Status:      record.Status,
		},
	})
}

func (route *PaymentsRoute) HandleReturn(reqCtx *gin.Context) {
	billCode := reqCtx.Query("billcode")
	statusID := reqCtx.Query("status_id")
	if billCode == "" || statusID == "" {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "7f05c9e2-3ad8-4b61-92c7-e14d68a0f5b3",
			Error: "missing billcode or status_id",
		})
		return
	}
	record, err := route.paymentService.HandleReturn(reqCtx.Request.Context(), billCode, statusID)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d8a361f4-07ce-4952-b6d8-29f0e54c81a7",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[billResult]{
		Status: responses.ResponseCodeOk,
		Result: billResult{
			PublicID:    record.PublicID,
			BillCode:    record.BillCode,
			AmountCents: record.AmountCents,
			Status:      record.Status,
		},
	})
}

func (route *PaymentsRoute) ListPayments(reqCtx *gin.Context) {
	u, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "a2d94f60-e5b1-4c78-83df-6b12c07e95a4",
		})
		return
	}
	records, err := route.paymentService.ListByUser(reqCtx.Request.Context(), u.ID)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "63e81b2a-9cf0-4d47-a5e8-01d7f94c26b5",
			Error: err.Error(),
		})
		return
	}
	results := make([]billResult, 0, len(records))
	for _, record := range records {
		results = append(results, billResult{
			PublicID:    record.PublicID,
			BillCode:    record.BillCode,
			AmountCents: record.AmountCents,
			Status:      record.Status,
		})
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[billResult]{
		Status:  responses.ResponseCodeOk,
		Total:   int64(len(results)),
		Results: results,
	})
}
