package cmd

import (
	"context"
	"fmt"

	"customer-crm/internal/dto/request"
	"customer-crm/internal/usecase"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// CreateAdminFlags returns the flag set of the create-admin subcommand.
func CreateAdminFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("create-admin", pflag.ContinueOnError)
	fs.String("username", "", "admin username")
	fs.String("email", "", "admin email")
	fs.String("password", "", "admin password")
	return fs
}

// CreateAdmin creates a staff account in the admin group from parsed flags.
func CreateAdmin(ctx context.Context, auth usecase.AuthService, fs *pflag.FlagSet, logger *zap.Logger) error {
	username, _ := fs.GetString("username")
	email, _ := fs.GetString("email")
	password, _ := fs.GetString("password")

	user, err := auth.CreateAdmin(ctx, &request.CreateAdminRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("create admin %q: %w", username, err)
	}

	logger.Info("Admin account ready",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username))
	return nil
}
