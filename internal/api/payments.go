package api

import (
	"context"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

// PaymentsClient talks to the /payments endpoints.
type PaymentsClient struct {
	c *Client
}

// CreateIntent requests a payment intent for the given amount. The payment
// provider works in minor units, so the amount goes over the wire as an
// integer number of cents, unlike order totals which travel as dollars.
func (p *PaymentsClient) CreateIntent(ctx context.Context, amount money.Cents, currency string) (*domain.PaymentIntent, error) {
	if amount <= 0 {
		return nil, apperrors.InvalidInput("payment amount must be greater than zero")
	}
	if currency == "" {
		return nil, apperrors.InvalidInput("currency is required")
	}

	payload := struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}{Amount: int64(amount), Currency: currency}

	var intent domain.PaymentIntent
	if err := p.c.post(ctx, "/payments/create-intent", "create payment intent", payload, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
