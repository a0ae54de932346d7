package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, OK("hello"))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "hello", resp.Data)
}

func TestWriteJSON_FailEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusBadRequest, Fail("bad input"))

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "bad input", resp.Message)
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)

	WriteError(rec, req, apperrors.NotFound("order", "abc"), testLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "abc")
}

func TestWriteError_SentinelInvalidInput(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)

	WriteError(rec, req, apperrors.ErrInvalidInput, testLogger())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteError_UnknownErrorIsOpaque500(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)

	WriteError(rec, req, errors.New("pq: connection reset"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	// Internal details must not leak to the client.
	assert.NotContains(t, resp.Message, "pq:")
}
