// Package app wires the ordering client and drives a full demo session:
// log in, browse an event's menu, fill the cart, and run checkout.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/api"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/cart"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/checkout"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/config"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/httpclient"
)

// App holds the wired client stack.
type App struct {
	cfg          *config.Client
	logger       *slog.Logger
	tokens       *api.StaticTokenSource
	backend      *api.Client
	cart         *cart.Store
	orchestrator *checkout.Orchestrator
}

// confirmingPresenter stands in for the payment provider's sheet: it accepts
// every payment. Real provider integration is a UI concern outside this repo.
type confirmingPresenter struct {
	logger *slog.Logger
}

func (p *confirmingPresenter) Present(ctx context.Context, clientSecret, merchantName string) error {
	p.logger.InfoContext(ctx, "payment sheet confirmed",
		slog.String("merchant", merchantName),
	)
	return nil
}

// NewApp creates the client application with all dependencies wired.
func NewApp(cfg *config.Client, logger *slog.Logger) *App {
	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.RequestTimeout()
	httpCfg.MaxRetries = cfg.MaxRetries

	breaker := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpCfg),
		httpclient.CircuitBreakerConfig{
			Name:         "backend",
			MaxRequests:  cfg.CBMaxRequests,
			Interval:     time.Duration(cfg.CBIntervalSecs) * time.Second,
			Timeout:      time.Duration(cfg.CBTimeoutSecs) * time.Second,
			FailureRatio: cfg.CBFailureRatio,
			MinRequests:  cfg.CBMinRequests,
		},
		logger,
	)

	tokens := api.NewStaticTokenSource("")
	backend := api.NewClient(cfg.APIBaseURL, breaker, tokens, logger)
	cartStore := cart.NewStore(logger)

	return &App{
		cfg:     cfg,
		logger:  logger,
		tokens:  tokens,
		backend: backend,
		cart:    cartStore,
		orchestrator: checkout.NewOrchestrator(
			cartStore,
			backend.Orders(),
			backend.Payments(),
			&confirmingPresenter{logger: logger},
			logger,
			cfg.Currency,
			cfg.MerchantName,
		),
	}
}

// Cart exposes the cart store, for tests and alternate frontends.
func (a *App) Cart() *cart.Store { return a.cart }

// Run executes one demo ordering session against the configured backend.
func (a *App) Run(ctx context.Context) error {
	session, err := a.backend.Auth().Login(ctx, a.cfg.Email, a.cfg.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.tokens.Set(session.Token)
	a.logger.InfoContext(ctx, "logged in",
		slog.String("user_id", session.User.ID),
		slog.String("role", session.User.Role),
	)

	events, err := a.backend.Events().List(ctx)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return errors.New("backend has no events to order from")
	}
	event := events[0]

	items, err := a.backend.Menus().ByEvent(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("list menus for event %s: %w", event.ID, err)
	}
	if len(items) == 0 {
		return fmt.Errorf("event %s has no menu items", event.ID)
	}

	// Two of the first item, one of the second when available.
	for i, item := range items {
		if i >= 2 {
			break
		}
		if _, err := a.cart.Add(item, event.ID); err != nil {
			return fmt.Errorf("add %s to cart: %w", item.ID, err)
		}
	}
	if _, err := a.cart.Add(items[0], event.ID); err != nil {
		return fmt.Errorf("add %s to cart: %w", items[0].ID, err)
	}

	a.logger.InfoContext(ctx, "cart filled",
		slog.String("event_id", event.ID),
		slog.Int("total_items", a.cart.TotalItems()),
		slog.String("total_amount", a.cart.TotalAmount().String()),
	)

	receipt, err := a.orchestrator.PlaceOrder(ctx)
	if err != nil {
		var ce *checkout.Error
		if errors.As(err, &ce) {
			a.logger.ErrorContext(ctx, "checkout failed",
				slog.String("kind", string(ce.Kind)),
				slog.String("order_id", ce.OrderID),
				slog.String("user_message", ce.UserMessage()),
			)
		}
		return fmt.Errorf("checkout: %w", err)
	}

	order, err := a.backend.Orders().GetByID(ctx, receipt.OrderID)
	if err != nil {
		return fmt.Errorf("verify order %s: %w", receipt.OrderID, err)
	}

	a.logger.InfoContext(ctx, "order confirmed",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status),
		slog.String("total_amount", order.TotalAmount.String()),
	)
	return nil
}
