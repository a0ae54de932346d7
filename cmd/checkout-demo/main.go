package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/app"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/config"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/logger"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("checkout-demo", cfg.LogLevel)
	log.Info("starting checkout demo",
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	application := app.NewApp(cfg, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		log.Error("demo session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("checkout demo finished")
}
