package generation

import (
	"flowrelay.ai/flow-api-gateway/app/domain/media"
)

// Upstream request bodies. Every body leads with clientContext so the
// dispatcher can inject the solved-challenge context (see media.ClientContext
// for the ordering constraint).

type videoGenerateRequest struct {
	ClientContext *media.ClientContext `json:"clientContext"`
	Prompt        string               `json:"prompt"`
	AspectRatio   string               `json:"aspectRatio,omitempty"`
	Model         string               `json:"model,omitempty"`
	Seed          *int                 `json:"seed,omitempty"`
}

type imageGenerateRequest struct {
	ClientContext *media.ClientContext `json:"clientContext"`
	Prompt        string               `json:"prompt"`
	AspectRatio   string               `json:"aspectRatio,omitempty"`
	ImageCount    int                  `json:"imageCount,omitempty"`
}

type mediaUploadRequest struct {
	ClientContext *media.ClientContext `json:"clientContext"`
	MediaBytes    string               `json:"mediaBytes"`
	MimeType      string               `json:"mimeType"`
}

type mediaTransformRequest struct {
	ClientContext *media.ClientContext `json:"clientContext"`
	MediaID       string               `json:"mediaId"`
	Recipe        string               `json:"recipe"`
	Prompt        string               `json:"prompt,omitempty"`
}

type operationStatusRequest struct {
	ClientContext *media.ClientContext `json:"clientContext"`
	OperationName string               `json:"operationName"`
}
