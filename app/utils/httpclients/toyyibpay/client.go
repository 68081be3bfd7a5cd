package toyyibpay

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"flowrelay.ai/flow-api-gateway/app/utils/httpclients"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

// Return/callback status codes delivered by the gateway.
const (
	StatusSuccess = "1"
	StatusFailed  = "2"
	StatusPending = "3"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("ToyyibPayClient").
		SetTimeout(10 * time.Second)
}

type Client struct {
	baseURL      string
	secretKey    string
	categoryCode string
}

func NewClient() *Client {
	base := environment_variables.EnvironmentVariables.TOYYIBPAY_BASE_URL
	if base == "" {
		base = "https://toyyibpay.com"
	}
	return &Client{
		baseURL:      base,
		secretKey:    environment_variables.EnvironmentVariables.TOYYIBPAY_SECRET_KEY,
		categoryCode: environment_variables.EnvironmentVariables.TOYYIBPAY_CATEGORY_CODE,
	}
}

type BillParams struct {
	Name        string
	Description string
	// Smallest currency unit (sen).
	AmountCents int
	ExternalRef string
	ReturnURL   string
	CallbackURL string
	PayerEmail  string
}

type createBillResponse struct {
	BillCode string `json:"BillCode"`
}

// CreateBill registers a bill and returns the hosted payment page URL.
func (c *Client) CreateBill(ctx context.Context, params BillParams) (string, string, error) {
	var result []createBillResponse
	resp, err := RestyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"userSecretKey":           c.secretKey,
			"categoryCode":            c.categoryCode,
			"billName":                params.Name,
			"billDescription":         params.Description,
			"billPriceSetting":        "1",
			"billPayorInfo":           "1",
			"billAmount":              fmt.Sprintf("%d", params.AmountCents),
			"billReturnUrl":           params.ReturnURL,
			"billCallbackUrl":         params.CallbackURL,
			"billExternalReferenceNo": params.ExternalRef,
			"billTo":                  params.Name,
			"billEmail":               params.PayerEmail,
			"billPaymentChannel":      "0",
		}).
		SetResult(&result).
		Post(c.baseURL + "/index.php/api/createBill")
	if err != nil {
		return "", "", err
	}
	if resp.IsError() || len(result) == 0 || result[0].BillCode == "" {
		return "", "", fmt.Errorf("createBill failed: %d %s", resp.StatusCode(), resp.String())
	}
	billCode := result[0].BillCode
	return billCode, fmt.Sprintf("%s/%s", c.baseURL, billCode), nil
}
