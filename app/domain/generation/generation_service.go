package generation

import (
	"context"
	"fmt"

	"flowrelay.ai/flow-api-gateway/app/domain/dispatch"
	"flowrelay.ai/flow-api-gateway/app/domain/media"
	"flowrelay.ai/flow-api-gateway/app/domain/prompt"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
)

type Dispatcher interface {
	Execute(ctx context.Context, params dispatch.ExecuteParams) (*dispatch.Result, error)
}

type promptEnhancer interface {
	Enhance(ctx context.Context, raw string) string
}

// Service exposes the per-feature generation flows. Each network step goes
// through the dispatcher; multi-step flows pin step one's (token, server)
// pair onto every subsequent step.
type Service struct {
	dispatcher Dispatcher
	prompts    promptEnhancer
}

func NewService(dispatchService *dispatch.Service, promptService *prompt.Service) *Service {
	return newService(dispatchService, promptService)
}

func newService(dispatcher Dispatcher, prompts promptEnhancer) *Service {
	return &Service{
		dispatcher: dispatcher,
		prompts:    prompts,
	}
}

// Caller identifies the requesting session for server selection and
// upstream attribution.
type Caller struct {
	User       *user.User
	SessionID  string
	ClientHost string
}

type VideoParams struct {
	Prompt        string
	AspectRatio   string
	Model         string
	Ultra         bool
	EnhancePrompt bool
}

func (s *Service) GenerateVideo(ctx context.Context, caller Caller, params VideoParams) (*dispatch.Result, error) {
	op := media.OpVideoGenerate
	if params.Ultra {
		op = media.OpVideoUltraGenerate
	}
	text := params.Prompt
	if params.EnhancePrompt {
		text = s.prompts.Enhance(ctx, text)
	}
	clientContext := &media.ClientContext{SessionID: caller.SessionID, Tool: "video"}
	return s.dispatcher.Execute(ctx, dispatch.ExecuteParams{
		Operation: op,
		Path:      "/video:generate",
		Body: &videoGenerateRequest{
			ClientContext: clientContext,
			Prompt:        text,
			AspectRatio:   params.AspectRatio,
			Model:         params.Model,
		},
		ClientContext: clientContext,
		User:          caller.User,
		SessionID:     caller.SessionID,
		ClientHost:    caller.ClientHost,
	})
}

type ImageParams struct {
	Prompt        string
	AspectRatio   string
	ImageCount    int
	EnhancePrompt bool
}

func (s *Service) GenerateImage(ctx context.Context, caller Caller, params ImageParams) (*dispatch.Result, error) {
	text := params.Prompt
	if params.EnhancePrompt {
		text = s.prompts.Enhance(ctx, text)
	}
	count := params.ImageCount
	if count <= 0 {
		count = 1
	}
	clientContext := &media.ClientContext{SessionID: caller.SessionID, Tool: "image"}
	return s.dispatcher.Execute(ctx, dispatch.ExecuteParams{
		Operation: media.OpImageGenerate,
		Path:      "/image:generate",
		Body: &imageGenerateRequest{
			ClientContext: clientContext,
			Prompt:        text,
			AspectRatio:   params.AspectRatio,
			ImageCount:    count,
		},
		ClientContext: clientContext,
		User:          caller.User,
		SessionID:     caller.SessionID,
		ClientHost:    caller.ClientHost,
	})
}

type TransformParams struct {
	// Base64 media payload and its mime type.
	MediaBytes string
	MimeType   string
	Recipe     string
	Prompt     string
}

// TransformImage uploads the source media, then runs the transform recipe
// against it. The uploaded artifact's ID is only meaningful on the
// (server, token) pair that accepted it, so step two reuses exactly what
// step one resolved.
func (s *Service) TransformImage(ctx context.Context, caller Caller, params TransformParams) (*dispatch.Result, error) {
	uploadContext := &media.ClientContext{SessionID: caller.SessionID, Tool: "transform"}
	uploaded, err := s.dispatcher.Execute(ctx, dispatch.ExecuteParams{
		Operation: media.OpMediaUpload,
		Path:      "/media:upload",
		Body: &mediaUploadRequest{
			ClientContext: uploadContext,
			MediaBytes:    params.MediaBytes,
			MimeType:      params.MimeType,
		},
		ClientContext: uploadContext,
		User:          caller.User,
		SessionID:     caller.SessionID,
		ClientHost:    caller.ClientHost,
	})
	if err != nil {
		return nil, err
	}

	mediaID := stringField(uploaded.Data, "mediaId")
	if mediaID == "" {
		return nil, dispatch.NewError(dispatch.FailureUpstream, "upload response missing mediaId")
	}

	transformContext := &media.ClientContext{SessionID: caller.SessionID, Tool: "transform"}
	return s.dispatcher.Execute(ctx, dispatch.ExecuteParams{
		Operation: media.OpImageTransform,
		Path:      "/media:transform",
		Body: &mediaTransformRequest{
			ClientContext: transformContext,
			MediaID:       mediaID,
			Recipe:        params.Recipe,
			Prompt:        params.Prompt,
		},
		ClientContext:  transformContext,
		User:           caller.User,
		SessionID:      caller.SessionID,
		ClientHost:     caller.ClientHost,
		TokenOverride:  uploaded.TokenUsed,
		ServerOverride: uploaded.ServerUsed,
	})
}

// PollStatus checks a long-running generation operation. Not a generation
// kind: no slot accounting, no CAPTCHA.
func (s *Service) PollStatus(ctx context.Context, caller Caller, operationName string) (*dispatch.Result, error) {
	if operationName == "" {
		return nil, fmt.Errorf("operation name is required")
	}
	clientContext := &media.ClientContext{SessionID: caller.SessionID}
	return s.dispatcher.Execute(ctx, dispatch.ExecuteParams{
		Operation: media.OpStatusPoll,
		Path:      "/operations:get",
		Body: &operationStatusRequest{
			ClientContext: clientContext,
			OperationName: operationName,
		},
		ClientContext: clientContext,
		User:          caller.User,
		SessionID:     caller.SessionID,
		ClientHost:    caller.ClientHost,
	})
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key].(string); ok {
		return value
	}
	// Some backend revisions nest the upload result.
	if nested, ok := data["media"].(map[string]any); ok {
		if value, ok := nested[key].(string); ok {
			return value
		}
	}
	return ""
}
