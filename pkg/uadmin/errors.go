package uadmin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents an error reported by the user-management API.
// Message carries the server-provided text when the error body had one,
// otherwise an endpoint-specific default supplied by the transport.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// Common static errors that can be wrapped with context.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrUserIDRequired      = errors.New("user ID is required")
	ErrUsernameRequired    = errors.New("username is required")
	ErrRoleIDRequired      = errors.New("role ID is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("role not found")
)

// IsNotFound checks whether the error is an API not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}

	return false
}

// IsUnauthorized checks whether the error is an API authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}

	return false
}

// IsForbidden checks whether the error is an API authorization error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 403
	}

	return false
}

// ExtractErrorMessage pulls the "message" field out of an error body.
// Returns fallback when the body is not JSON or carries no message.
func ExtractErrorMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	return fallback
}
