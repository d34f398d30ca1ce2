package codility

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without a credential
	ErrMissingAPIKey = errors.New("codility API key is required")
)

// ValidationError indicates a required parameter was missing or empty.
// It is returned before any request is sent.
type ValidationError struct {
	Param   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("%s is required", e.Param)
}

// APIError represents a Codility API error response
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("codility API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// TransportError represents a network-level failure, as opposed to an HTTP
// error response from the API.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}
