package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// BackendErrorResponse mirrors the envelope returned by the FoodForConferences
// API on failure: {"success": false, "message": "..."}.
type BackendErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an appropriate AppError. If the response body matches the standard
// envelope, its message is preserved; otherwise a generic error carries the
// status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, operation string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body: %w)", operation, resp.StatusCode, err)
	}

	var backend BackendErrorResponse
	if json.Unmarshal(bodyBytes, &backend) == nil && backend.Message != "" {
		return mapBackendError(resp.StatusCode, backend.Message, operation)
	}

	// Fallback: unstructured error body.
	return fmt.Errorf("%s returned status %d: %s", operation, resp.StatusCode, string(bodyBytes))
}

// mapBackendError translates the backend's HTTP status code and message into
// an AppError that preserves the error semantics.
func mapBackendError(status int, message, operation string) error {
	qualifiedMsg := fmt.Sprintf("%s: %s", operation, message)

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound(operation, message)
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(qualifiedMsg)
	case status == http.StatusConflict:
		return apperrors.Conflict(qualifiedMsg)
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(qualifiedMsg)
	case status == http.StatusUnprocessableEntity:
		return apperrors.PaymentFailed(qualifiedMsg)
	case status == http.StatusServiceUnavailable:
		return apperrors.ServiceUnavailable(qualifiedMsg)
	case status >= 500:
		return fmt.Errorf("%s server error (%d): %s", operation, status, message)
	default:
		return &apperrors.AppError{
			Code:    "BACKEND_ERROR",
			Message: qualifiedMsg,
			Status:  status,
		}
	}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
