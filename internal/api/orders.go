package api

import (
	"context"
	"fmt"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// OrdersClient talks to the /orders endpoints.
type OrdersClient struct {
	c *Client
}

// Create submits a new order and returns it as the backend stored it,
// including its assigned id.
func (o *OrdersClient) Create(ctx context.Context, input *domain.CreateOrderInput) (*domain.Order, error) {
	if input == nil {
		return nil, apperrors.InvalidInput("order input is required")
	}

	var order domain.Order
	if err := o.c.post(ctx, "/orders", "create order", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid tells the backend the payment intent for an order was confirmed.
func (o *OrdersClient) MarkPaid(ctx context.Context, orderID, paymentIntentID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}
	if paymentIntentID == "" {
		return nil, apperrors.InvalidInput("payment intent id is required")
	}

	payload := struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}{PaymentIntentID: paymentIntentID}

	var order domain.Order
	path := fmt.Sprintf("/orders/%s/pay", orderID)
	if err := o.c.post(ctx, path, "mark order paid", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID fetches a single order.
func (o *OrdersClient) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	var order domain.Order
	if err := o.c.get(ctx, "/orders/"+orderID, "get order", &order); err != nil {
		return nil, err
	}
	return &order, nil
}
