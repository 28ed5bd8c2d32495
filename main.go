// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"admin-panel/cmd"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/wire"
	"admin-panel/pkg/database"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, db, config, logger)

	if err := app.Service.Auth.EnsureAdmin(ctx, config.Admin); err != nil {
		logger.Fatal("Failed to ensure admin account", zap.Error(err))
	}

	shutdownTimeout := time.Duration(config.App.ShutdownTimeout) * time.Second
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, shutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
