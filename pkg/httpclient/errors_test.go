package httpclient

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseResponseError_EnvelopeBadRequest(t *testing.T) {
	resp := fakeResponse(http.StatusBadRequest, `{"success":false,"message":"total mismatch"}`)
	err := ParseResponseError(resp, "create order")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "total mismatch")
	assert.Contains(t, err.Error(), "create order")
}

func TestParseResponseError_EnvelopeUnauthorized(t *testing.T) {
	resp := fakeResponse(http.StatusUnauthorized, `{"success":false,"message":"token expired"}`)
	err := ParseResponseError(resp, "create order")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestParseResponseError_EnvelopeNotFound(t *testing.T) {
	resp := fakeResponse(http.StatusNotFound, `{"success":false,"message":"no such order"}`)
	err := ParseResponseError(resp, "mark paid")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestParseResponseError_EnvelopeUnprocessable(t *testing.T) {
	resp := fakeResponse(http.StatusUnprocessableEntity, `{"success":false,"message":"card declined"}`)
	err := ParseResponseError(resp, "create intent")
	assert.True(t, errors.Is(err, apperrors.ErrPaymentFailed))
}

func TestParseResponseError_UnstructuredBody(t *testing.T) {
	resp := fakeResponse(http.StatusBadRequest, "plain text failure")
	err := ParseResponseError(resp, "create order")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "plain text failure")
}

func TestParseResponseError_ServerError(t *testing.T) {
	resp := fakeResponse(http.StatusInternalServerError, `{"success":false,"message":"db down"}`)
	err := ParseResponseError(resp, "create order")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
	assert.Contains(t, err.Error(), "db down")
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(http.StatusBadRequest))
	assert.True(t, IsClientError(http.StatusNotFound))
	assert.False(t, IsClientError(http.StatusInternalServerError))
	assert.False(t, IsClientError(http.StatusOK))
}
