package media

// ServiceKind is the upstream path segment selecting a backend service:
// requests go to {server}/api/{kind}{path}.
type ServiceKind string

const (
	KindFlow    ServiceKind = "flow"
	KindImageFX ServiceKind = "imagefx"
	KindWhisk   ServiceKind = "whisk"
)

// Operation describes one upstream request shape. Generation operations are
// subject to slot accounting; Captcha operations carry a solved-challenge
// token; PersonalKeyOnly operations never use the shared master solver key.
type Operation struct {
	Kind            ServiceKind
	Generation      bool
	Captcha         bool
	PersonalKeyOnly bool
}

var (
	OpVideoGenerate      = Operation{Kind: KindFlow, Generation: true, Captcha: true}
	OpVideoUltraGenerate = Operation{Kind: KindFlow, Generation: true, Captcha: true, PersonalKeyOnly: true}
	OpImageGenerate      = Operation{Kind: KindImageFX, Generation: true, Captcha: true}
	OpMediaUpload        = Operation{Kind: KindWhisk, Generation: false, Captcha: false}
	OpImageTransform     = Operation{Kind: KindWhisk, Generation: true, Captcha: true}
	OpStatusPoll         = Operation{Kind: KindFlow, Generation: false, Captcha: false}
)

// ClientContext is embedded in every upstream request body. The backend
// requires recaptchaContext to serialize as the first key of clientContext,
// which the field order here guarantees.
type ClientContext struct {
	RecaptchaContext *RecaptchaContext `json:"recaptchaContext,omitempty"`
	SessionID        string            `json:"sessionId,omitempty"`
	Tool             string            `json:"tool,omitempty"`
	WorkflowID       string            `json:"workflowId,omitempty"`
}

type RecaptchaContext struct {
	Token  string `json:"token"`
	Source string `json:"source,omitempty"`
}
