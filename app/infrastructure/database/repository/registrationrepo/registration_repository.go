package registrationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "flowrelay.ai/flow-api-gateway/app/domain/subscription"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/dbschema"
)

type RegistrationGormRepository struct {
	db *gorm.DB
}

func NewRegistrationGormRepository(db *gorm.DB) domain.RegistrationRepository {
	return &RegistrationGormRepository{
		db: db,
	}
}

func (r *RegistrationGormRepository) Create(ctx context.Context, registration *domain.Registration) error {
	model := dbschema.NewSchemaUltraRegistration(registration)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	registration.ID = model.ID
	return nil
}

func (r *RegistrationGormRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Registration, error) {
	var model dbschema.UltraRegistration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}
