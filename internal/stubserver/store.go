// Package stubserver is an in-memory stand-in for the FoodForConferences
// backend. It speaks the same envelope and routes as the real API so the
// client packages and the demo binary can run a full checkout sequence
// without external services.
package stubserver

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

type account struct {
	user     domain.User
	password string
}

// Store holds all stub backend state. Everything lives in maps behind one
// RWMutex; the stub serves a handful of clients, not production traffic.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]account              // by email
	tokens   map[string]string               // token -> user id
	events   map[string]domain.Event         // by id
	menus    map[string]domain.MenuItem      // by id
	orders   map[string]*domain.Order        // by id
	intents  map[string]domain.PaymentIntent // by intent id
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]account),
		tokens:   make(map[string]string),
		events:   make(map[string]domain.Event),
		menus:    make(map[string]domain.MenuItem),
		orders:   make(map[string]*domain.Order),
		intents:  make(map[string]domain.PaymentIntent),
	}
}

// Seed loads a demo dataset: one event, one vendor menu, one attendee.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts["attendee@example.com"] = account{
		user:     domain.User{ID: "user-1", Name: "Demo Attendee", Email: "attendee@example.com", Role: domain.RoleAttendee},
		password: "password123",
	}

	event := domain.Event{
		ID:        "ev-1",
		Title:     "GopherCon Kitchen",
		Venue:     domain.Venue{Name: "Hall B", Address: "1 Conference Way"},
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		VendorIDs: []string{"ven-1"},
	}
	s.events[event.ID] = event

	for _, item := range []domain.MenuItem{
		{ID: "item-1", Name: "Street Tacos", Price: money.Cents(1000), VendorID: "ven-1", EventID: "ev-1"},
		{ID: "item-2", Name: "Cold Brew", Price: money.Cents(350), VendorID: "ven-1", EventID: "ev-1"},
		{ID: "item-3", Name: "Veggie Bowl", Price: money.Cents(1250), VendorID: "ven-1", EventID: "ev-1"},
	} {
		s.menus[item.ID] = item
	}
}

// Authenticate checks credentials and issues a session token.
func (s *Store) Authenticate(email, password string) (domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[email]
	if !ok || acct.password != password {
		return domain.User{}, "", apperrors.Unauthorized("invalid credentials")
	}

	token := "tok_" + uuid.New().String()
	s.tokens[token] = acct.user.ID
	return acct.user, token, nil
}

// RegisterAccount creates a new account and issues a session token.
func (s *Store) RegisterAccount(name, email, password, role string) (domain.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return domain.User{}, "", apperrors.Conflict("email is already registered")
	}

	user := domain.User{ID: uuid.New().String(), Name: name, Email: email, Role: role}
	s.accounts[email] = account{user: user, password: password}

	token := "tok_" + uuid.New().String()
	s.tokens[token] = user.ID
	return user, token, nil
}

// UserForToken resolves a session token to a user id.
func (s *Store) UserForToken(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	return userID, ok
}

// Events returns all events.
func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out
}

// Event returns one event by id.
func (s *Store) Event(id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return domain.Event{}, apperrors.NotFound("event", id)
	}
	return e, nil
}

// MenusByEvent returns all menu items published for an event.
func (s *Store) MenusByEvent(eventID string) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MenuItem, 0)
	for _, item := range s.menus {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out
}

// MenuItem returns one menu item by id.
func (s *Store) MenuItem(id string) (domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menus[id]
	if !ok {
		return domain.MenuItem{}, apperrors.NotFound("menu item", id)
	}
	return item, nil
}

// CreateOrder validates the payload totals and stores a pending order.
func (s *Store) CreateOrder(userID string, input *domain.CreateOrderInput, now string) (*domain.Order, error) {
	var computed money.Cents
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidInput("item quantity must be greater than zero")
		}
		computed += item.Price.Mul(item.Quantity)
	}
	if computed != input.TotalAmount {
		return nil, apperrors.InvalidInput("totalAmount does not match item prices")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[input.EventID]; !ok {
		return nil, apperrors.NotFound("event", input.EventID)
	}

	order := &domain.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		EventID:     input.EventID,
		VendorID:    input.VendorID,
		Items:       input.Items,
		TotalAmount: input.TotalAmount,
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.orders[order.ID] = order
	return order, nil
}

// Order returns one order by id.
func (s *Store) Order(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order", id)
	}
	cp := *order
	return &cp, nil
}

// CreateIntent records a payment intent for an amount in minor units.
func (s *Store) CreateIntent(amount int64, currency string) (domain.PaymentIntent, error) {
	if amount <= 0 {
		return domain.PaymentIntent{}, apperrors.InvalidInput("amount must be greater than zero")
	}
	if currency == "" {
		return domain.PaymentIntent{}, apperrors.InvalidInput("currency is required")
	}

	intent := domain.PaymentIntent{
		IntentID:     "pi_" + uuid.New().String(),
		ClientSecret: "cs_" + uuid.New().String(),
	}

	s.mu.Lock()
	s.intents[intent.IntentID] = intent
	s.mu.Unlock()
	return intent, nil
}

// MarkOrderPaid transitions a pending order to paid, recording the intent.
func (s *Store) MarkOrderPaid(orderID, paymentIntentID, now string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, apperrors.NotFound("order", orderID)
	}
	if _, ok := s.intents[paymentIntentID]; !ok {
		return nil, apperrors.NotFound("payment intent", paymentIntentID)
	}
	if order.Status == domain.OrderStatusPaid {
		return nil, apperrors.Conflict("order is already paid")
	}
	if order.Status != domain.OrderStatusPending {
		return nil, apperrors.Conflict("only pending orders can be marked paid")
	}

	order.Status = domain.OrderStatusPaid
	order.PaymentIntentID = paymentIntentID
	order.UpdatedAt = now

	cp := *order
	return &cp, nil
}
