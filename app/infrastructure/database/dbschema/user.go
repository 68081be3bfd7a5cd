package dbschema

import (
	"time"

	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

type User struct {
	BaseModel
	PublicID              string `gorm:"uniqueIndex"`
	Username              string `gorm:"uniqueIndex"`
	Email                 string
	PasswordHash          string
	Role                  string
	Status                string
	SubscriptionExpiresAt *time.Time
	PersonalAuthToken     string
	SolverAPIKey          string
	AllowMasterToken      *bool
}

func NewSchemaUser(u *user.User) *User {
	return &User{
		BaseModel: BaseModel{
			ID: u.ID,
		},
		PublicID:              u.PublicID,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  u.Role,
		Status:                string(u.Status),
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		PersonalAuthToken:     u.PersonalAuthToken,
		SolverAPIKey:          u.SolverAPIKey,
		AllowMasterToken:      u.AllowMasterToken,
	}
}

func (u *User) EtoD() *user.User {
	return &user.User{
		ID:                    u.ID,
		PublicID:              u.PublicID,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  u.Role,
		Status:                user.Status(u.Status),
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		PersonalAuthToken:     u.PersonalAuthToken,
		SolverAPIKey:          u.SolverAPIKey,
		AllowMasterToken:      u.AllowMasterToken,
	}
}
