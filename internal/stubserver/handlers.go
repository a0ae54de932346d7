package stubserver

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/httputil"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/validator"
)

// Handler serves the stub backend API.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// NewHandler creates the stub backend handler.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=attendee organizer vendor staff admin"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	user, token, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(sessionResponse{Token: token, User: user}))
}

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	user, token, err := h.store.RegisterAccount(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(sessionResponse{Token: token, User: user}))
}

// RequireAuth rejects requests without a known bearer token and stashes the
// user id in the request header chain for handlers that need it.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			httputil.WriteError(w, r, apperrors.Unauthorized("missing bearer token"), h.logger)
			return
		}
		userID, valid := h.store.UserForToken(token)
		if !valid {
			httputil.WriteError(w, r, apperrors.Unauthorized("invalid or expired token"), h.logger)
			return
		}
		r.Header.Set("X-User-ID", userID)
		next.ServeHTTP(w, r)
	})
}

// --- Events / menus ---

// ListEvents handles GET /api/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(h.store.Events()))
}

// GetEvent handles GET /api/events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.store.Event(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(event))
}

// ListEventMenus handles GET /api/menus/event/{eventId}
func (h *Handler) ListEventMenus(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if _, err := h.store.Event(eventID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(h.store.MenusByEvent(eventID)))
}

// GetMenuItem handles GET /api/menus/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.MenuItem(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(item))
}

// --- Orders / payments ---

// CreateOrder handles POST /api/orders
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var input domain.CreateOrderInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	order, err := h.store.CreateOrder(r.Header.Get("X-User-ID"), &input, nowStamp())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "order created",
		slog.String("order_id", order.ID),
		slog.String("event_id", order.EventID),
		slog.String("total_amount", order.TotalAmount.String()),
	)
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(order))
}

// GetOrder handles GET /api/orders/{id}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.Order(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(order))
}

type markPaidRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

// MarkOrderPaid handles POST /api/orders/{id}/pay
func (h *Handler) MarkOrderPaid(w http.ResponseWriter, r *http.Request) {
	var req markPaidRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	orderID := chi.URLParam(r, "id")
	order, err := h.store.MarkOrderPaid(orderID, req.PaymentIntentID, nowStamp())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "order marked paid",
		slog.String("order_id", order.ID),
		slog.String("payment_intent_id", req.PaymentIntentID),
	)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(order))
}

type createIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// CreateIntent handles POST /api/payments/create-intent
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	intent, err := h.store.CreateIntent(req.Amount, req.Currency)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(intent))
}
