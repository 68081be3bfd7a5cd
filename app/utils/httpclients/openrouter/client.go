package openrouter

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"flowrelay.ai/flow-api-gateway/app/utils/httpclients"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("OpenRouterClient")
}

type Client struct {
	baseURL string
}

func NewClient() *Client {
	base := environment_variables.EnvironmentVariables.OPENROUTER_BASE_URL
	if base == "" {
		base = "https://openrouter.ai/api/v1"
	}
	return &Client{baseURL: base}
}

func (c *Client) CreateChatCompletion(ctx context.Context, apiKey string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var response openai.ChatCompletionResponse
	_, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return nil, err
	}
	return &response, nil
}
