package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Sentinel error identity ---

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound, ErrInvalidInput, ErrUnauthorized, ErrInternal,
		ErrConflict, ErrServiceUnavail, ErrPaymentFailed,
		ErrMalformedItem, ErrEventConflict, ErrMixedVendorCart,
		ErrEmptyCart, ErrCartLocked, ErrCheckoutInFlight, ErrPaymentCancelled,
	}

	for i := 0; i < len(sentinels); i++ {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i], sentinels[j],
				"sentinels %d and %d should be distinct", i, j)
		}
	}
}

func TestPaymentCancelled_IsNotPaymentFailed(t *testing.T) {
	// Cancellation is a user choice and must never be classified as a
	// payment failure by callers using errors.Is.
	assert.False(t, errors.Is(ErrPaymentCancelled, ErrPaymentFailed))
}

// --- AppError behavior ---

func TestAppError_ErrorString_WithWrappedError(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	appErr := &AppError{Code: "INTERNAL_ERROR", Message: "something broke", Err: inner}
	assert.Contains(t, appErr.Error(), "INTERNAL_ERROR")
	assert.Contains(t, appErr.Error(), "something broke")
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_ErrorString_WithoutWrappedError(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "order not found"}
	assert.Equal(t, "NOT_FOUND: order not found", appErr.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "nope", Err: ErrNotFound}
	assert.True(t, errors.Is(appErr, ErrNotFound))
}

// --- Constructor functions ---

func TestNotFound(t *testing.T) {
	err := NotFound("order", "ord-123")
	require.NotNil(t, err)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "ord-123")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("quantity must be positive")
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestConflict(t *testing.T) {
	err := Conflict("cart bound to another event")
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestPaymentFailed(t *testing.T) {
	err := PaymentFailed("card declined")
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.True(t, errors.Is(err, ErrPaymentFailed))
}

func TestServiceUnavailable(t *testing.T) {
	err := ServiceUnavailable("backend down")
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.True(t, errors.Is(err, ErrServiceUnavail))
}

// --- HTTPStatus mapping ---

func TestHTTPStatus_AppErrorWins(t *testing.T) {
	appErr := &AppError{Code: "X", Message: "y", Status: http.StatusTeapot}
	assert.Equal(t, http.StatusTeapot, HTTPStatus(appErr))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrMalformedItem))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrEventConflict))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(ErrPaymentFailed))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(ErrServiceUnavail))
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("add item: %w", ErrMalformedItem)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "fetch order")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "fetch order")
}
