package dispatch

import (
	"errors"
	"fmt"
)

// FailureKind classifies dispatcher failures so the UI layer can decide
// between "configure a token", "fix your prompt", and "try again".
type FailureKind string

const (
	// No bearer credential exists anywhere; do not retry.
	FailureAuthenticationRequired FailureKind = "authentication_required"
	// The upstream rejected the credential; re-generate, don't retry.
	FailureAuthenticationFailed FailureKind = "authentication_failed"
	// Safety/content-policy block. Expected user-input feedback, never
	// logged as a system fault, non-retriable.
	FailureContentRejected       FailureKind = "content_rejected"
	FailureAccountInactive       FailureKind = "account_inactive"
	FailureSubscriptionExpired   FailureKind = "subscription_expired"
	FailureSubscriptionNotActive FailureKind = "subscription_not_active"
	// Generic non-2xx; callers may retry manually.
	FailureUpstream FailureKind = "upstream_error"
	// Transport-level failure, no response received.
	FailureNetwork FailureKind = "network_error"
)

type Error struct {
	Kind    FailureKind
	Message string
	// Upstream HTTP status when one was received.
	Status int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind FailureKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the failure kind, or "" for foreign errors.
func KindOf(err error) FailureKind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return ""
}

func IsKind(err error, kind FailureKind) bool {
	return KindOf(err) == kind
}
