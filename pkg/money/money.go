// Package money provides integer-cents arithmetic for order amounts.
//
// The platform API (and the payment provider) disagree about units: menu
// prices and order totals travel over the wire as decimal dollars, while
// payment intents are created in minor units. Keeping everything as int64
// cents internally makes cart totals exact; decimal conversions happen only
// at the wire boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in minor units (US cents).
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDollars converts a wire-format dollar amount to cents, rounding to the
// nearest cent. The backend serializes prices as JSON numbers, so values
// arrive as float64.
func FromDollars(dollars float64) Cents {
	d := decimal.NewFromFloat(dollars).Mul(hundred).Round(0)
	return Cents(d.IntPart())
}

// FromDecimalString parses a dollar amount such as "12.50" into cents.
// Fails on malformed input or amounts with sub-cent precision.
func FromDecimalString(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	c := d.Mul(hundred)
	if !c.Equal(c.Round(0)) {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return Cents(c.IntPart()), nil
}

// Dollars returns the amount as a decimal dollar value.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(hundred)
}

// DollarsFloat returns the amount as a float64 dollar value for JSON
// payloads that expect a plain number. Exact for any realistic order total.
func (c Cents) DollarsFloat() float64 {
	f, _ := c.Dollars().Float64()
	return f
}

// Mul multiplies the amount by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount as a dollar string, e.g. "12.50".
func (c Cents) String() string {
	return c.Dollars().StringFixed(2)
}

// MarshalJSON serializes the amount as a plain decimal dollar number, which
// is how the backend represents prices and totals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Dollars().StringFixed(2)), nil
}

// UnmarshalJSON parses a decimal dollar number (or quoted string) into cents,
// rounding to the nearest cent.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*c = 0
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse money value %q: %w", s, err)
	}
	*c = Cents(d.Mul(hundred).Round(0).IntPart())
	return nil
}
