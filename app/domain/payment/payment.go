package payment

import "context"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

type Payment struct {
	ID          uint
	PublicID    string
	UserID      uint
	BillCode    string
	AmountCents int
	Description string
	Status      string
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	FindByBillCode(ctx context.Context, billCode string) (*Payment, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Payment, error)
}
