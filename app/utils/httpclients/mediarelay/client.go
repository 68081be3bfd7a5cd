package mediarelay

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"flowrelay.ai/flow-api-gateway/app/utils/httpclients"
)

var RestyClient *resty.Client

// healthRestyClient carries the short timeout used for auxiliary
// health/status calls; generation calls rely on transport defaults.
var healthRestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("MediaRelayClient")
	healthRestyClient = httpclients.NewClient("MediaRelayHealthClient").
		SetTimeout(5 * time.Second)
}

type Client struct{}

func NewClient() *Client {
	return &Client{}
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Post sends a request to {server}/api/{kind}{path} with the resolved
// bearer token. Non-2xx statuses are returned to the caller for
// classification, not treated as transport errors.
func (c *Client) Post(ctx context.Context, serverURL, kind, path, token, username string, body any) (*Response, error) {
	resp, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-user-username", username).
		SetAuthToken(token).
		SetBody(body).
		Post(fmt.Sprintf("%s/api/%s%s", serverURL, kind, path))
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
	}, nil
}

// Health pings a relay server's health endpoint.
func (c *Client) Health(ctx context.Context, serverURL string) error {
	resp, err := healthRestyClient.R().
		SetContext(ctx).
		Get(serverURL + "/health-check")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("relay unhealthy: %d", resp.StatusCode())
	}
	return nil
}
