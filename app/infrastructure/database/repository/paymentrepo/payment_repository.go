package paymentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "flowrelay.ai/flow-api-gateway/app/domain/payment"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/dbschema"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) domain.PaymentRepository {
	return &PaymentGormRepository{
		db: db,
	}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p *domain.Payment) error {
	model := dbschema.NewSchemaPayment(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	return nil
}

func (r *PaymentGormRepository) Update(ctx context.Context, p *domain.Payment) error {
	model := dbschema.NewSchemaPayment(p)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *PaymentGormRepository) FindByBillCode(ctx context.Context, billCode string) (*domain.Payment, error) {
	var model dbschema.Payment
	err := r.db.WithContext(ctx).Where("bill_code = ?", billCode).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *PaymentGormRepository) FindByUserID(ctx context.Context, userID uint) ([]*domain.Payment, error) {
	var models []dbschema.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	payments := make([]*domain.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, models[i].EtoD())
	}
	return payments, nil
}
