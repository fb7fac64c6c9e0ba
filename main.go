// main.go
package main

import (
	"context"
	"log"
	"os"

	"customer-crm/cmd"
	"customer-crm/internal/data/repository"
	"customer-crm/internal/wire"
	"customer-crm/pkg/database"
	"customer-crm/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	// Parse flags; "create-admin" as first argument switches subcommand
	args := os.Args[1:]
	subcommand := ""
	if len(args) > 0 && args[0] == "create-admin" {
		subcommand, args = args[0], args[1:]
	}

	flags := pflag.NewFlagSet("customer-crm", pflag.ExitOnError)
	utils.RegisterFlags(flags)
	adminFlags := cmd.CreateAdminFlags()
	if subcommand != "" {
		flags.AddFlagSet(adminFlags)
	}
	if err := flags.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	// Load config
	config, err := utils.LoadConfig(flags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if subcommand == "create-admin" {
		if err := cmd.CreateAdmin(context.Background(), app.Service.Auth, adminFlags, logger); err != nil {
			logger.Fatal("Failed to create admin", zap.Error(err))
		}
		return
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
