// Package cart implements the in-memory cart for a single ordering session.
//
// The store owns the only mutable state in the client core. It is bound to at
// most one event at a time, merges added items by identity, and hands the
// checkout orchestrator an immutable snapshot to work from. Nothing here is
// persisted: a cart lives and dies with the session.
package cart

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

// Cart operation upper-bound limits to keep order payloads sane.
const (
	// MaxQuantityPerLine is the maximum quantity allowed for a single line.
	MaxQuantityPerLine = 100
	// MaxLinesPerCart is the maximum number of distinct items in a cart.
	MaxLinesPerCart = 50
)

// Store maintains the cart aggregate for one session.
//
// All operations are atomic with respect to the in-memory state: a rejected
// operation leaves the cart exactly as it was. The store is safe for use from
// the UI goroutine and the checkout goroutine, but it is a single-session
// object, not a multi-user structure.
type Store struct {
	mu      sync.Mutex
	logger  *slog.Logger
	lines   []domain.CartLine
	eventID string
	frozen  bool
}

// NewStore creates an empty cart store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// PendingAdd represents an add that hit the single-event invariant: the cart
// is bound to a different event than the item being added. The caller must
// resolve it explicitly, mirroring the confirmation prompt in the UI.
type PendingAdd struct {
	store   *Store
	item    domain.MenuItem
	eventID string
}

// Item returns the item awaiting resolution.
func (p *PendingAdd) Item() domain.MenuItem { return p.item }

// EventID returns the event the pending item belongs to.
func (p *PendingAdd) EventID() string { return p.eventID }

// Replace resolves the conflict by discarding the current cart and starting a
// new one bound to the pending item's event, containing it at quantity 1.
func (p *PendingAdd) Replace() error {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return apperrors.ErrCartLocked
	}

	s.lines = []domain.CartLine{{Item: p.item, Quantity: 1}}
	s.eventID = p.eventID

	s.logger.Info("cart replaced after event conflict",
		slog.String("event_id", p.eventID),
		slog.String("item_id", p.item.ID),
	)
	return nil
}

// Cancel resolves the conflict by keeping the cart as it is.
func (p *PendingAdd) Cancel() {}

// Add puts one unit of the item into the cart.
//
// If the cart is empty it becomes bound to eventID. If a line for the item
// already exists its quantity is incremented. If the cart is bound to a
// different event, nothing is mutated and a non-nil *PendingAdd is returned
// for the caller to resolve.
func (s *Store) Add(item domain.MenuItem, eventID string) (*PendingAdd, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if eventID == "" {
		return nil, apperrors.InvalidInput("event id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return nil, apperrors.ErrCartLocked
	}

	if len(s.lines) > 0 && s.eventID != eventID {
		return &PendingAdd{store: s, item: item, eventID: eventID}, apperrors.ErrEventConflict
	}

	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID {
			if s.lines[i].Quantity >= MaxQuantityPerLine {
				return nil, apperrors.InvalidInput(
					fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
			}
			s.lines[i].Quantity++
			s.logger.Debug("cart line incremented",
				slog.String("item_id", item.ID),
				slog.Int("quantity", s.lines[i].Quantity),
			)
			return nil, nil
		}
	}

	if len(s.lines) >= MaxLinesPerCart {
		return nil, apperrors.InvalidInput(
			fmt.Sprintf("cart must not contain more than %d items", MaxLinesPerCart))
	}

	s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: 1})
	s.eventID = eventID

	s.logger.Debug("cart line added",
		slog.String("item_id", item.ID),
		slog.String("event_id", eventID),
	)
	return nil, nil
}

// UpdateQuantity sets the quantity of an existing line to exactly quantity.
// A quantity of zero or less removes the line. Unknown item ids fail with a
// not-found error.
func (s *Store) UpdateQuantity(itemID string, quantity int) error {
	if itemID == "" {
		return apperrors.InvalidInput("item id is required")
	}
	if quantity > MaxQuantityPerLine {
		return apperrors.InvalidInput(
			fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return apperrors.ErrCartLocked
	}

	for i := range s.lines {
		if s.lines[i].Item.ID == itemID {
			if quantity <= 0 {
				s.removeAtLocked(i)
			} else {
				s.lines[i].Quantity = quantity
			}
			return nil
		}
	}

	return apperrors.NotFound("cart line", itemID)
}

// Remove deletes the line for itemID if present. Removing an absent line is
// a no-op, matching the idempotent remove gesture in the UI.
func (s *Store) Remove(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return apperrors.ErrCartLocked
	}

	for i := range s.lines {
		if s.lines[i].Item.ID == itemID {
			s.removeAtLocked(i)
			return nil
		}
	}
	return nil
}

// Clear empties the cart and unbinds it from its event.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return apperrors.ErrCartLocked
	}

	s.lines = nil
	s.eventID = ""
	return nil
}

// removeAtLocked removes the line at index i and clears the event binding if
// the cart became empty. Caller must hold s.mu.
func (s *Store) removeAtLocked(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	if len(s.lines) == 0 {
		s.eventID = ""
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// EventID returns the event the cart is bound to, if any.
func (s *Store) EventID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventID, s.eventID != ""
}

// IsEmpty reports whether the cart holds no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// TotalAmount returns the sum of price * quantity over all lines, in cents.
func (s *Store) TotalAmount() money.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Cents
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// TotalItems returns the sum of quantities over all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Snapshot captures the cart for checkout and validates the checkout
// preconditions: non-empty, bound to an event, all lines valid, and a single
// vendor across every line. The backend order payload carries exactly one
// vendor id, so a mixed-vendor cart must be caught here, before any network
// call.
func (s *Store) Snapshot() (*domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	if s.eventID == "" {
		return nil, fmt.Errorf("%w: cart has lines but no event binding", apperrors.ErrInternal)
	}

	vendorID := s.lines[0].Item.VendorID
	snap := &domain.CartSnapshot{
		EventID:  s.eventID,
		VendorID: vendorID,
		Lines:    make([]domain.CartLine, len(s.lines)),
	}

	for i, l := range s.lines {
		if err := l.Item.Validate(); err != nil {
			return nil, err
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %s has quantity %d", apperrors.ErrInternal, l.Item.ID, l.Quantity)
		}
		if l.Item.VendorID != vendorID {
			return nil, fmt.Errorf("%w: %s vs %s", apperrors.ErrMixedVendorCart, vendorID, l.Item.VendorID)
		}
		snap.Lines[i] = l
		snap.TotalAmount += l.LineTotal()
		snap.TotalItems += l.Quantity
	}

	return snap, nil
}

// Freeze blocks all mutations until Unfreeze. The checkout orchestrator
// freezes the cart so that the snapshot it submitted cannot drift while the
// attempt is in flight.
func (s *Store) Freeze() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return apperrors.ErrCartLocked
	}
	s.frozen = true
	return nil
}

// FinishCheckout unfreezes the cart and, when the attempt succeeded, clears
// it in the same critical section so no edit can slip between the two.
func (s *Store) FinishCheckout(clearLines bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frozen = false
	if clearLines {
		s.lines = nil
		s.eventID = ""
	}
}
