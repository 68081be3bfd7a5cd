package user

import (
	"context"
	"time"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusSubscription Status = "subscription"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID       uint
	PublicID string
	Username string
	Email    string
	// bcrypt hash, never serialized to clients
	PasswordHash string
	Role         string
	Status       Status
	// Only meaningful when Status is StatusSubscription
	SubscriptionExpiresAt *time.Time

	// Bearer credential for the media backend, owned by the user.
	PersonalAuthToken string
	// The user's own CAPTCHA-solving-service key.
	SolverAPIKey string
	// Tri-state: nil/true = may use the shared master solver key,
	// false = must use their own key.
	AllowMasterToken *bool
}

// MayUseMasterKey reports whether the shared solver key is not explicitly
// blocked for this user. Unset counts as allowed.
func (u *User) MayUseMasterKey() bool {
	return u.AllowMasterToken == nil || *u.AllowMasterToken
}

type UserFilter struct {
	Username *string
	Status   *Status
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByPublicID(ctx context.Context, publicID string) (*User, error)
	FindByFilter(ctx context.Context, filter UserFilter) ([]*User, error)
}
