package prompt

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/openrouter"
	"flowrelay.ai/flow-api-gateway/app/utils/logger"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

const enhanceSystemPrompt = "Rewrite the user's media generation prompt to be vivid and specific. Reply with the rewritten prompt only."

// Service rewrites raw prompts through an OpenRouter-compatible LLM
// endpoint. Enhancement is strictly best effort: any failure returns the
// raw prompt unchanged.
type Service struct {
	client *openrouter.Client
	apiKey string
	model  string
}

func NewService(client *openrouter.Client) *Service {
	model := environment_variables.EnvironmentVariables.PROMPT_MODEL
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	return &Service{
		client: client,
		apiKey: environment_variables.EnvironmentVariables.OPENROUTER_API_KEY,
		model:  model,
	}
}

func (s *Service) Enhance(ctx context.Context, raw string) string {
	if s.apiKey == "" || raw == "" {
		return raw
	}
	response, err := s.client.CreateChatCompletion(ctx, s.apiKey, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: enhanceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: raw},
		},
	})
	if err != nil {
		logger.GetLogger().Warnf("prompt enhancement failed, using raw prompt: %v", err)
		return raw
	}
	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return raw
	}
	return response.Choices[0].Message.Content
}
