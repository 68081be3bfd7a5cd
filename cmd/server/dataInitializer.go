package main

import (
	"context"

	"flowrelay.ai/flow-api-gateway/app/domain/auth"
	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

type DataInitializer struct {
	userService *user.UserService
}

func NewDataInitializer(userService *user.UserService) *DataInitializer {
	return &DataInitializer{
		userService: userService,
	}
}

func (d *DataInitializer) Install(ctx context.Context) error {
	return d.installBootstrapAdmin(ctx)
}

// installBootstrapAdmin creates the operator account on first boot. No-op
// when the credentials are unset or the account already exists.
func (d *DataInitializer) installBootstrapAdmin(ctx context.Context) error {
	env := environment_variables.EnvironmentVariables
	if env.ADMIN_USERNAME == "" || env.ADMIN_PASSWORD == "" {
		return nil
	}
	existing, err := d.userService.FindByUsername(ctx, env.ADMIN_USERNAME)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hashed, err := auth.HashPassword(env.ADMIN_PASSWORD)
	if err != nil {
		return err
	}
	_, err = d.userService.RegisterUser(ctx, &user.User{
		Username:     env.ADMIN_USERNAME,
		Email:        env.ADMIN_EMAIL,
		PasswordHash: hashed,
		Role:         user.RoleAdmin,
		Status:       user.StatusActive,
	})
	return err
}
