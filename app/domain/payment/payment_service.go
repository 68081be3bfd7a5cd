package payment

import (
	"context"
	"fmt"

	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/utils/httpclients/toyyibpay"
	"flowrelay.ai/flow-api-gateway/app/utils/idgen"
)

// Service wraps the payment gateway as a black box: create a bill, get a
// redirect URL, and consume the return status code. The dispatcher never
// touches this.
type Service struct {
	repo   PaymentRepository
	client *toyyibpay.Client
}

func NewService(repo PaymentRepository, client *toyyibpay.Client) *Service {
	return &Service{
		repo:   repo,
		client: client,
	}
}

func (s *Service) CreateBill(ctx context.Context, u *user.User, amountCents int, description, returnURL, callbackURL string) (*Payment, string, error) {
	if amountCents <= 0 {
		return nil, "", fmt.Errorf("invalid amount")
	}
	publicID, err := idgen.GenerateSecureID("ord", 12)
	if err != nil {
		return nil, "", err
	}
	billCode, payURL, err := s.client.CreateBill(ctx, toyyibpay.BillParams{
		Name:        u.Username,
		Description: description,
		AmountCents: amountCents,
		ExternalRef: publicID,
		ReturnURL:   returnURL,
		CallbackURL: callbackURL,
		PayerEmail:  u.Email,
	})
	if err != nil {
		return nil, "", err
	}
	record := &Payment{
		PublicID:    publicID,
		UserID:      u.ID,
		BillCode:    billCode,
		AmountCents: amountCents,
		Description: description,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, "", err
	}
	return record, payURL, nil
}

// HandleReturn consumes the gateway's return/callback status code:
// 1=success, 2=failed, 3=pending.
func (s *Service) HandleReturn(ctx context.Context, billCode, statusID string) (*Payment, error) {
	record, err := s.repo.FindByBillCode(ctx, billCode)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("unknown bill code: %s", billCode)
	}
	switch statusID {
	case toyyibpay.StatusSuccess:
		record.Status = StatusPaid
	case toyyibpay.StatusFailed:
		record.Status = StatusFailed
	case toyyibpay.StatusPending:
		record.Status = StatusPending
	default:
		return nil, fmt.Errorf("unknown payment status: %s", statusID)
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*Payment, error) {
	return s.repo.FindByUserID(ctx, userID)
}
