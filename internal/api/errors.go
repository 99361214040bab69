package api

import (
	"errors"
	"fmt"

	"savoia/internal/models"
)

// APIError is any non-2xx answer from the backend, carrying the status code
// the flow controller branches on and the 409 conflict attribution when
// present.
type APIError struct {
	StatusCode int
	Message    string
	Fields     models.ConflictFields
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// StatusOf returns the backend status code, or 0 for transport and local
// errors that never reached the backend.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf returns the backend-provided message, or fallback when the error
// carries none (transport failures, empty payloads).
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// ConflictFieldsOf extracts the 409 campos attribution, zero-valued when the
// error is not a conflict or the backend omitted the map.
func ConflictFieldsOf(err error) models.ConflictFields {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return models.ConflictFields{}
}
