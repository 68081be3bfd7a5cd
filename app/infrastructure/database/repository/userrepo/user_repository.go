package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/dbschema"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) domain.UserRepository {
	return &UserGormRepository{
		db: db,
	}
}

func (r *UserGormRepository) Create(ctx context.Context, u *domain.User) error {
	model := dbschema.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	u.ID = model.ID
	return nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *domain.User) error {
	model := dbschema.NewSchemaUser(u)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var model dbschema.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *UserGormRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	var model dbschema.User
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *UserGormRepository) FindByFilter(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	query := r.db.WithContext(ctx).Model(&dbschema.User{})
	if filter.Username != nil {
		query = query.Where("username = ?", *filter.Username)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	var models []dbschema.User
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].EtoD())
	}
	return users, nil
}
