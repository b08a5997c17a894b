package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pricelens/backend/config"
	"github.com/pricelens/backend/internal/app"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	zap.L().Info("Starting PriceLens Backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.Duration("tracker_timeout", cfg.Tracker.Timeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg, cfg.Server.Port); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}
