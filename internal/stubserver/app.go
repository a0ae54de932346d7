package stubserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/config"
)

// App runs the stub backend HTTP server.
type App struct {
	cfg        *config.Server
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp wires the stub backend with a seeded in-memory store.
func NewApp(cfg *config.Server, logger *slog.Logger) *App {
	store := NewStore()
	store.Seed()

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           NewRouter(store, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails. Shutdown is graceful within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting stub backend",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout())
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	a.logger.Info("stub backend stopped")
	return nil
}
