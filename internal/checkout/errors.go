package checkout

import (
	"errors"
	"fmt"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// Kind classifies the step a checkout attempt failed at.
type Kind string

const (
	KindOrderCreation Kind = "order_creation_failed"
	KindPayment       Kind = "payment_failed"
	KindFinalization  Kind = "finalization_failed"
)

// PaymentReason distinguishes why the payment step failed. Cancellation is a
// first-class outcome and gets a different user-facing message than a hard
// failure.
type PaymentReason string

const (
	ReasonCancelled PaymentReason = "cancelled"
	ReasonDeclined  PaymentReason = "declined"
	ReasonOther     PaymentReason = "other"
)

// Error is the single terminal failure a checkout attempt reports. OrderID is
// set when an order was created before the failure and is now dangling on the
// backend; IntentID is set once a payment intent was obtained.
type Error struct {
	Kind     Kind
	Reason   PaymentReason
	OrderID  string
	IntentID string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindPayment:
		return fmt.Sprintf("checkout %s (%s): %v", e.Kind, e.Reason, e.Err)
	default:
		return fmt.Sprintf("checkout %s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Dangling reports whether the attempt left an order behind that the backend
// will never see paid.
func (e *Error) Dangling() bool { return e.OrderID != "" }

// UserMessage returns the message the UI should show for this failure.
// Cancellation is deliberately non-alarming, declines invite a retry, and a
// finalization failure is the loudest since money may have been captured
// without a confirmed order.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindOrderCreation:
		return "We couldn't place your order. Please try again."
	case KindPayment:
		if e.Reason == ReasonCancelled {
			return "Payment cancelled. Your cart is unchanged."
		}
		return "Payment didn't go through. Please check your card and try again."
	case KindFinalization:
		return fmt.Sprintf(
			"Your payment was taken but we couldn't confirm order %s. Please contact support with this order number.",
			e.OrderID)
	}
	return "Checkout failed. Please try again."
}

// Cancelled reports whether err is a checkout failure caused by the user
// dismissing the payment sheet.
func Cancelled(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == KindPayment && ce.Reason == ReasonCancelled
	}
	return errors.Is(err, apperrors.ErrPaymentCancelled)
}
