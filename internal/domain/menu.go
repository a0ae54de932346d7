package domain

import (
	"fmt"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

// MenuItem is a purchasable item published by a vendor for an event.
// The cart treats it as opaque except for id, price, vendor id and event id.
type MenuItem struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       money.Cents `json:"price"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	VendorID    string      `json:"vendorId"`
	EventID     string      `json:"eventId"`
}

// Validate checks the identity fields the order payload depends on.
// An item without an id or vendor id would corrupt the checkout payload,
// so it must be rejected before it ever enters a cart.
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: missing item id", apperrors.ErrMalformedItem)
	}
	if m.VendorID == "" {
		return fmt.Errorf("%w: item %s has no vendor id", apperrors.ErrMalformedItem, m.ID)
	}
	if m.Price < 0 {
		return fmt.Errorf("%w: item %s has negative price", apperrors.ErrMalformedItem, m.ID)
	}
	return nil
}

// Venue is where an event takes place.
type Venue struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity,omitempty"`
}

// MealSlot is a named serving window within an event.
type MealSlot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Event is a conference with participating food vendors.
type Event struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Venue       Venue      `json:"venue"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	MealSlots   []MealSlot `json:"mealSlots,omitempty"`
	VendorIDs   []string   `json:"vendorIds,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// Vendor is a food vendor serving one or more events.
type Vendor struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine,omitempty"`
	LogoURL     string  `json:"logoUrl,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description,omitempty"`
}
