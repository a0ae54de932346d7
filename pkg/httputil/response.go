package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/logger"
	"github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/validator"
)

// Response is the JSON envelope the FoodForConferences API speaks:
// {"success": true, "data": ...} on success, {"success": false, "message": ...}
// on failure. The client package parses the same shape.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardized error response based on the error type.
// It prefers the request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= 500 {
			l.ErrorContext(r.Context(), "internal error",
				slog.String("error", appErr.Error()),
				slog.String("path", r.URL.Path),
			)
		}
		WriteJSON(w, appErr.Status, Fail(appErr.Message))
		return
	}

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, Fail(verr.Error()))
		return
	}

	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		WriteJSON(w, status, Fail("an internal error occurred"))
		return
	}

	WriteJSON(w, status, Fail(err.Error()))
}
