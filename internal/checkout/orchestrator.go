// Package checkout drives a cart snapshot through order creation, payment
// collection, and finalization against the backend and the payment provider.
//
// One attempt runs at a time. Steps are strictly sequential and never retried
// automatically; each step's failure is terminal for the attempt and is
// reported as a typed *Error carrying whatever ids the backend already knows
// about. The cart stays frozen for the whole attempt and is cleared only when
// the order is confirmed paid.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/cart"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

// OrderService creates orders and marks them paid on the backend.
type OrderService interface {
	Create(ctx context.Context, input *domain.CreateOrderInput) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentIntentID string) (*domain.Order, error)
}

// PaymentService obtains payment intents from the backend. Amounts are in
// minor units.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount money.Cents, currency string) (*domain.PaymentIntent, error)
}

// PaymentPresenter runs the payment provider's UI flow for a client secret.
// A nil return means the payment was confirmed. ErrPaymentCancelled means the
// user dismissed the sheet; any other error is a decline or provider failure.
type PaymentPresenter interface {
	Present(ctx context.Context, clientSecret, merchantName string) error
}

// Receipt is the successful outcome of a checkout attempt.
type Receipt struct {
	OrderID     string
	TotalAmount money.Cents
}

// Orchestrator sequences the checkout steps for one cart.
type Orchestrator struct {
	cart      *cart.Store
	orders    OrderService
	payments  PaymentService
	presenter PaymentPresenter
	logger    *slog.Logger

	currency     string
	merchantName string

	mu       sync.Mutex
	inFlight bool
	state    domain.AttemptState
}

// NewOrchestrator creates a checkout orchestrator bound to one cart store.
func NewOrchestrator(
	cartStore *cart.Store,
	orders OrderService,
	payments PaymentService,
	presenter PaymentPresenter,
	logger *slog.Logger,
	currency, merchantName string,
) *Orchestrator {
	return &Orchestrator{
		cart:         cartStore,
		orders:       orders,
		payments:     payments,
		presenter:    presenter,
		logger:       logger,
		currency:     currency,
		merchantName: merchantName,
		state:        domain.AttemptIdle,
	}
}

// State returns the state the most recent attempt reached.
func (o *Orchestrator) State() domain.AttemptState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// InFlight reports whether an attempt is currently running.
func (o *Orchestrator) InFlight() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight
}

// PlaceOrder runs one full checkout attempt: snapshot the cart, create the
// order, obtain a payment intent, present the payment sheet, and mark the
// order paid. A second call while an attempt is unresolved fails with
// ErrCheckoutInFlight. On success the cart is cleared; on any failure it is
// unfrozen but left intact so the user can retry.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (*Receipt, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}

	attemptID := uuid.New().String()
	log := o.logger.With(slog.String("attempt_id", attemptID))

	snap, err := o.cart.Snapshot()
	if err != nil {
		o.finish(domain.AttemptIdle, false)
		return nil, fmt.Errorf("checkout preconditions: %w", err)
	}

	log.InfoContext(ctx, "checkout started",
		slog.String("event_id", snap.EventID),
		slog.String("vendor_id", snap.VendorID),
		slog.Int("total_items", snap.TotalItems),
		slog.String("total_amount", snap.TotalAmount.String()),
	)

	order, err := o.createOrder(ctx, snap)
	if err != nil {
		o.finish(domain.AttemptOrderCreationFailed, false)
		checkoutAttemptsTotal.WithLabelValues(string(KindOrderCreation)).Inc()
		log.ErrorContext(ctx, "order creation failed", slog.String("error", err.Error()))
		return nil, &Error{Kind: KindOrderCreation, Err: err}
	}
	o.setState(domain.AttemptOrderCreated)
	log.InfoContext(ctx, "order created", slog.String("order_id", order.ID))

	intent, err := o.createIntent(ctx, snap.TotalAmount)
	if err != nil {
		o.finish(domain.AttemptPaymentFailed, false)
		o.reportDangling(ctx, log, order.ID, "payment intent creation failed", err)
		checkoutAttemptsTotal.WithLabelValues(string(KindPayment)).Inc()
		return nil, &Error{Kind: KindPayment, Reason: ReasonOther, OrderID: order.ID, Err: err}
	}
	o.setState(domain.AttemptPaymentInFlight)

	if err := o.presentPayment(ctx, intent.ClientSecret); err != nil {
		reason := ReasonDeclined
		if errors.Is(err, apperrors.ErrPaymentCancelled) {
			reason = ReasonCancelled
		}
		o.finish(domain.AttemptPaymentFailed, false)
		o.reportDangling(ctx, log, order.ID, "payment not completed", err)
		checkoutAttemptsTotal.WithLabelValues(string(KindPayment)).Inc()
		return nil, &Error{Kind: KindPayment, Reason: reason, OrderID: order.ID, IntentID: intent.IntentID, Err: err}
	}
	o.setState(domain.AttemptPaymentConfirmed)
	log.InfoContext(ctx, "payment confirmed", slog.String("order_id", order.ID))

	if err := o.markPaid(ctx, order.ID, intent.IntentID); err != nil {
		// Money was captured by the provider but the backend does not know.
		// Surface both ids loudly and keep the cart so nothing is lost.
		o.finish(domain.AttemptFinalizationFailed, false)
		checkoutAttemptsTotal.WithLabelValues(string(KindFinalization)).Inc()
		checkoutDanglingOrdersTotal.Inc()
		log.ErrorContext(ctx, "order finalization failed after payment was taken",
			slog.String("order_id", order.ID),
			slog.String("payment_intent_id", intent.IntentID),
			slog.String("error", err.Error()),
		)
		return nil, &Error{Kind: KindFinalization, OrderID: order.ID, IntentID: intent.IntentID, Err: err}
	}

	o.finish(domain.AttemptFinalized, true)
	checkoutAttemptsTotal.WithLabelValues("finalized").Inc()
	log.InfoContext(ctx, "checkout finalized",
		slog.String("order_id", order.ID),
		slog.String("total_amount", snap.TotalAmount.String()),
	)

	return &Receipt{OrderID: order.ID, TotalAmount: snap.TotalAmount}, nil
}

// begin claims the single in-flight slot and freezes the cart.
func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight {
		return apperrors.ErrCheckoutInFlight
	}
	if err := o.cart.Freeze(); err != nil {
		return fmt.Errorf("%w: cart is locked by another attempt", apperrors.ErrCheckoutInFlight)
	}
	o.inFlight = true
	o.state = domain.AttemptIdle
	return nil
}

func (o *Orchestrator) setState(s domain.AttemptState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// finish records the terminal state, releases the in-flight slot, and
// unfreezes the cart, clearing it only on success.
func (o *Orchestrator) finish(terminal domain.AttemptState, clearCart bool) {
	o.mu.Lock()
	o.state = terminal
	o.inFlight = false
	o.mu.Unlock()

	o.cart.FinishCheckout(clearCart)
}

// reportDangling logs an order that exists on the backend but will never be
// marked paid by this attempt.
func (o *Orchestrator) reportDangling(ctx context.Context, log *slog.Logger, orderID, cause string, err error) {
	checkoutDanglingOrdersTotal.Inc()
	log.WarnContext(ctx, "order left dangling, needs backend reconciliation",
		slog.String("order_id", orderID),
		slog.String("cause", cause),
		slog.String("error", err.Error()),
	)
}

func (o *Orchestrator) createOrder(ctx context.Context, snap *domain.CartSnapshot) (*domain.Order, error) {
	defer observeStep("create_order", time.Now())

	input := &domain.CreateOrderInput{
		EventID:     snap.EventID,
		VendorID:    snap.VendorID,
		Items:       make([]domain.OrderItem, len(snap.Lines)),
		TotalAmount: snap.TotalAmount,
	}
	for i, l := range snap.Lines {
		input.Items[i] = domain.OrderItem{
			MenuItemID: l.Item.ID,
			VendorID:   l.Item.VendorID,
			Quantity:   l.Quantity,
			Price:      l.Item.Price,
		}
	}

	order, err := o.orders.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: backend returned an order without an id", apperrors.ErrInternal)
	}
	return order, nil
}

func (o *Orchestrator) createIntent(ctx context.Context, amount money.Cents) (*domain.PaymentIntent, error) {
	defer observeStep("create_intent", time.Now())

	intent, err := o.payments.CreateIntent(ctx, amount, o.currency)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	if intent.ClientSecret == "" || intent.IntentID == "" {
		return nil, fmt.Errorf("%w: backend returned an incomplete payment intent", apperrors.ErrInternal)
	}
	return intent, nil
}

func (o *Orchestrator) presentPayment(ctx context.Context, clientSecret string) error {
	defer observeStep("present_payment", time.Now())
	return o.presenter.Present(ctx, clientSecret, o.merchantName)
}

func (o *Orchestrator) markPaid(ctx context.Context, orderID, intentID string) error {
	defer observeStep("mark_paid", time.Now())

	order, err := o.orders.MarkPaid(ctx, orderID, intentID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if order.Status != domain.OrderStatusPaid {
		return fmt.Errorf("%w: order %s reported status %q after mark-paid", apperrors.ErrInternal, orderID, order.Status)
	}
	return nil
}

func observeStep(step string, start time.Time) {
	checkoutStepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}
