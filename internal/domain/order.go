package domain

import "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"

// Order status constants as the backend reports them.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one line of an order as the backend stores it. Price is the
// unit price at the time the item was added to the cart, not re-fetched.
type OrderItem struct {
	MenuItemID string      `json:"menuItemId"`
	VendorID   string      `json:"vendorId"`
	Quantity   int         `json:"quantity"`
	Price      money.Cents `json:"price"`
}

// CreateOrderInput is the order-creation payload. Items carry the unit price
// captured when they entered the cart, and TotalAmount is the cart total at
// submission time; the backend validates both.
type CreateOrderInput struct {
	EventID     string      `json:"eventId" validate:"required"`
	VendorID    string      `json:"vendorId" validate:"required"`
	Items       []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount money.Cents `json:"totalAmount" validate:"required"`
}

// Order mirrors the backend's order resource.
type Order struct {
	ID              string      `json:"_id"`
	UserID          string      `json:"userId,omitempty"`
	EventID         string      `json:"eventId"`
	VendorID        string      `json:"vendorId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     money.Cents `json:"totalAmount"`
	Status          string      `json:"status"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// PaymentIntent is the payment provider handle returned by the backend.
// The client secret is handed to the provider's payment sheet; the intent id
// is what the backend needs to mark the order paid.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	IntentID     string `json:"intentId"`
}
