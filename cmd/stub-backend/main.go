package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/config"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/stubserver"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/logger"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("stub-backend", cfg.LogLevel)
	log.Info("starting stub backend",
		slog.String("environment", cfg.Environment),
		slog.Int("http_port", cfg.HTTPPort),
	)

	application := stubserver.NewApp(cfg, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
