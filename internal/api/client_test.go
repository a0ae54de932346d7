package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/httpclient"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/money"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *StaticTokenSource) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := NewStaticTokenSource("")
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(srv.URL+"/api", httpclient.New(httpclient.DefaultConfig()), tokens, logger), tokens
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

func TestOrders_Create(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	c, tokens := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusCreated, domain.Order{
			ID:          "O1",
			EventID:     "ev-1",
			VendorID:    "ven-1",
			TotalAmount: money.Cents(1000),
			Status:      domain.OrderStatusPending,
		})
	}))
	tokens.Set("jwt-123")

	order, err := c.Orders().Create(context.Background(), &domain.CreateOrderInput{
		EventID:  "ev-1",
		VendorID: "ven-1",
		Items: []domain.OrderItem{
			{MenuItemID: "item-a", VendorID: "ven-1", Quantity: 2, Price: money.Cents(500)},
		},
		TotalAmount: money.Cents(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, "O1", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Bearer jwt-123", gotAuth)

	// Prices travel as decimal dollars on the wire.
	assert.Equal(t, 10.00, gotBody["totalAmount"])
	items := gotBody["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 5.00, items[0].(map[string]any)["price"])
}

func TestOrders_MarkPaid(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/O1/pay", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "pi_1", body["paymentIntentId"])
		writeEnvelope(w, http.StatusOK, domain.Order{ID: "O1", Status: domain.OrderStatusPaid})
	}))

	order, err := c.Orders().MarkPaid(context.Background(), "O1", "pi_1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestOrders_CreateBackendRejection(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusBadRequest, "totalAmount mismatch")
	}))

	_, err := c.Orders().Create(context.Background(), &domain.CreateOrderInput{
		EventID: "ev-1", VendorID: "ven-1",
		Items:       []domain.OrderItem{{MenuItemID: "item-a", VendorID: "ven-1", Quantity: 1, Price: 100}},
		TotalAmount: 100,
	})

	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "totalAmount mismatch")
}

func TestPayments_CreateIntentSendsMinorUnits(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/create-intent", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1999), body["amount"], "intent amounts are integer cents")
		assert.Equal(t, "usd", body["currency"])
		writeEnvelope(w, http.StatusOK, domain.PaymentIntent{ClientSecret: "cs_x", IntentID: "pi_x"})
	}))

	intent, err := c.Payments().CreateIntent(context.Background(), money.Cents(1999), "usd")
	require.NoError(t, err)
	assert.Equal(t, "cs_x", intent.ClientSecret)
	assert.Equal(t, "pi_x", intent.IntentID)
}

func TestPayments_CreateIntentValidation(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := c.Payments().CreateIntent(context.Background(), 0, "usd")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestEvents_ListAndGet(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events":
			writeEnvelope(w, http.StatusOK, []domain.Event{{ID: "ev-1", Title: "GopherCon"}})
		case "/api/events/ev-1":
			writeEnvelope(w, http.StatusOK, domain.Event{ID: "ev-1", Title: "GopherCon"})
		default:
			writeFailure(w, http.StatusNotFound, "event not found")
		}
	}))
	ctx := context.Background()

	events, err := c.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "GopherCon", events[0].Title)

	event, err := c.Events().GetByID(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", event.ID)

	_, err = c.Events().GetByID(ctx, "ev-404")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMenus_ByEventDecodesDollarPrices(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/menus/event/ev-1", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":[{"_id":"item-a","name":"Tacos","price":12.50,"vendorId":"ven-1","eventId":"ev-1"}]}`)
	}))

	items, err := c.Menus().ByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, money.Cents(1250), items[0].Price)
}

func TestAuth_LoginStoresNothingButReturnsSession(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		writeEnvelope(w, http.StatusOK, Session{
			Token: "jwt-abc",
			User:  domain.User{ID: "u1", Name: "Abbas", Role: domain.RoleAttendee},
		})
	}))

	session, err := c.Auth().Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", session.Token)
	assert.Equal(t, "u1", session.User.ID)
}

func TestAuth_LoginRejected(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusUnauthorized, "invalid credentials")
	}))

	_, err := c.Auth().Login(context.Background(), "a@b.c", "wrong")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestSend_EnvelopeSuccessFalseOn200(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"success":false,"message":"shard unavailable"}`)
	}))

	_, err := c.Events().List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shard unavailable")
}

func TestStaticTokenSource(t *testing.T) {
	ts := NewStaticTokenSource("seed")
	assert.Equal(t, "seed", ts.Token())
	ts.Set("next")
	assert.Equal(t, "next", ts.Token())
	ts.Clear()
	assert.Equal(t, "", ts.Token())
}
