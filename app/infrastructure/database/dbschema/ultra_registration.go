package dbschema

import (
	"time"

	"flowrelay.ai/flow-api-gateway/app/domain/subscription"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(UltraRegistration{})
}

type UltraRegistration struct {
	BaseModel
	UserID    uint `gorm:"index"`
	Plan      string
	Active    bool
	ExpiresAt *time.Time
}

func NewSchemaUltraRegistration(r *subscription.Registration) *UltraRegistration {
	return &UltraRegistration{
		BaseModel: BaseModel{
			ID: r.ID,
		},
		UserID:    r.UserID,
		Plan:      r.Plan,
		Active:    r.Active,
		ExpiresAt: r.ExpiresAt,
	}
}

func (r *UltraRegistration) EtoD() *subscription.Registration {
	return &subscription.Registration{
		ID:        r.ID,
		UserID:    r.UserID,
		Plan:      r.Plan,
		Active:    r.Active,
		ExpiresAt: r.ExpiresAt,
	}
}
