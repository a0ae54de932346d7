package domain

import "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"

// CartLine is one distinct item in the cart and its requested quantity.
// A line with quantity <= 0 must not exist; it is removed instead.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// LineTotal returns price * quantity for this line.
func (l CartLine) LineTotal() money.Cents {
	return l.Item.Price.Mul(l.Quantity)
}

// CartSnapshot is an immutable copy of the cart taken when checkout starts.
// The orchestrator works exclusively from the snapshot so that the prices
// and quantities submitted are exactly the ones the user confirmed.
type CartSnapshot struct {
	EventID     string
	VendorID    string
	Lines       []CartLine
	TotalAmount money.Cents
	TotalItems  int
}
