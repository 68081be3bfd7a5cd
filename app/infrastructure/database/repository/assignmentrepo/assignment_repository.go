package assignmentrepo

import (
	"context"

	"gorm.io/gorm"

	domain "flowrelay.ai/flow-api-gateway/app/domain/dispatch"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database/dbschema"
)

type AssignmentGormRepository struct {
	db *gorm.DB
}

func NewAssignmentGormRepository(db *gorm.DB) domain.AssignmentRecorder {
	return &AssignmentGormRepository{
		db: db,
	}
}

func (r *AssignmentGormRepository) Record(ctx context.Context, a *domain.Assignment) error {
	model := dbschema.NewSchemaServerAssignment(a)
	return r.db.WithContext(ctx).Create(model).Error
}
