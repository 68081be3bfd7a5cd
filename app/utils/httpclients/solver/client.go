package solver

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"flowrelay.ai/flow-api-gateway/app/utils/httpclients"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("SolverClient").
		SetTimeout(5 * time.Second)
}

// Client talks to the external CAPTCHA-solving service. The service is
// keyed by a user- or platform-level API key plus an optional project
// identifier and returns an opaque solved-challenge string.
type Client struct {
	BaseURL   string
	projectID string
}

func NewClient() *Client {
	return &Client{
		BaseURL:   environment_variables.EnvironmentVariables.SOLVER_API_URL,
		projectID: environment_variables.EnvironmentVariables.SOLVER_PROJECT_ID,
	}
}

type solveRequest struct {
	APIKey    string `json:"apiKey"`
	ProjectID string `json:"projectId,omitempty"`
}

type solveResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

func (c *Client) Solve(ctx context.Context, apiKey string) (string, error) {
	var result solveResponse
	resp, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(solveRequest{APIKey: apiKey, ProjectID: c.projectID}).
		SetResult(&result).
		Post(c.BaseURL + "/v1/token")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("solver returned %d: %s", resp.StatusCode(), result.Error)
	}
	if result.Token == "" {
		return "", fmt.Errorf("solver returned empty token")
	}
	return result.Token, nil
}
