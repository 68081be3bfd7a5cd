package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"flowrelay.ai/flow-api-gateway/app/utils/logger"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "2a6f90c3-48d1-4be7-9f25-c30e81d7a654").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}

	if environment_variables.EnvironmentVariables.ENABLE_AUTOMIGRATE {
		for _, model := range SchemaRegistry {
			err = db.AutoMigrate(model)
			if err != nil {
				logger.GetLogger().
					WithField("error_code", "8c1d5b27-e904-4f6a-b3d8-51a2f07c9e36").
					Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
				return nil, err
			}
		}
	}

	DB = db
	return DB, nil
}
