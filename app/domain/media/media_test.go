package media

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClientContextKeyOrder(t *testing.T) {
	encoded, err := json.Marshal(&ClientContext{
		RecaptchaContext: &RecaptchaContext{Token: "tok", Source: "master"},
		SessionID:        "sess-1",
		Tool:             "video",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.HasPrefix(string(encoded), `{"recaptchaContext":`) {
		t.Errorf("recaptchaContext must serialize first: %s", encoded)
	}
}

func TestClientContextOmitsEmptyRecaptcha(t *testing.T) {
	encoded, err := json.Marshal(&ClientContext{SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "recaptchaContext") {
		t.Errorf("unset challenge context must be omitted: %s", encoded)
	}
}

func TestOperationShapes(t *testing.T) {
	if !OpVideoUltraGenerate.PersonalKeyOnly {
		t.Error("ultra video must never use the shared master key")
	}
	if OpStatusPoll.Generation || OpStatusPoll.Captcha {
		t.Error("status polling is neither a generation nor captcha-gated")
	}
	if OpMediaUpload.Captcha {
		t.Error("media upload carries no challenge token")
	}
	if OpVideoGenerate.Kind != KindFlow || OpImageGenerate.Kind != KindImageFX || OpImageTransform.Kind != KindWhisk {
		t.Error("operation kinds must route to their backend services")
	}
}
