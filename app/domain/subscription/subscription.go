package subscription

import (
	"context"
	"time"
)

// Registration is one premium ("ultra") tier registration row. A user may
// hold at most one active registration at a time.
type Registration struct {
	ID        uint
	UserID    uint
	Plan      string
	Active    bool
	ExpiresAt *time.Time
}

func (r *Registration) IsActive(now time.Time) bool {
	if r == nil || !r.Active {
		return false
	}
	if r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
		return false
	}
	return true
}

type RegistrationRepository interface {
	Create(ctx context.Context, r *Registration) error
	FindByUserID(ctx context.Context, userID uint) (*Registration, error)
}
