package dbschema

import (
	"flowrelay.ai/flow-api-gateway/app/domain/dispatch"
	"flowrelay.ai/flow-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ServerAssignment{})
}

type ServerAssignment struct {
	BaseModel
	UserID    uint `gorm:"index"`
	Username  string
	ServerURL string
	Kind      string
}

func NewSchemaServerAssignment(a *dispatch.Assignment) *ServerAssignment {
	return &ServerAssignment{
		UserID:    a.UserID,
		Username:  a.Username,
		ServerURL: a.ServerURL,
		Kind:      string(a.Kind),
	}
}
