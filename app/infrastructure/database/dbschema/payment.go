package dbschema

import (
	"flowrelay.ai/flow-api-gateway/app/domain/payment"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Payment{})
}

type Payment struct {
	BaseModel
	PublicID    string `gorm:"uniqueIndex"`
	UserID      uint   `gorm:"index"`
	BillCode    string `gorm:"index"`
	AmountCents int
	Description string
	Status      string
}

func NewSchemaPayment(p *payment.Payment) *Payment {
	return &Payment{
		BaseModel: BaseModel{
			ID: p.ID,
		},
		PublicID:    p.PublicID,
		UserID:      p.UserID,
		BillCode:    p.BillCode,
		AmountCents: p.AmountCents,
		Description: p.Description,
		Status:      p.Status,
	}
}

func (p *Payment) EtoD() *payment.Payment {
	return &payment.Payment{
		ID:          p.ID,
		PublicID:    p.PublicID,
		UserID:      p.UserID,
		BillCode:    p.BillCode,
		AmountCents: p.AmountCents,
		Description: p.Description,
		Status:      p.Status,
	}
}
