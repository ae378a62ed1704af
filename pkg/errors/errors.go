// Package errors defines the client-side error taxonomy. Transport and
// API failures are deliberately interchangeable from the caller's point
// of view: both carry a human-readable message and nothing else the
// stores act on. Auth errors additionally mark responses that should
// evict the session token.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies a client error.
type ErrorType string

const (
	// ErrorTypeTransport covers network failures and malformed responses.
	ErrorTypeTransport ErrorType = "TRANSPORT"
	// ErrorTypeAPI covers non-2xx responses carrying a server message.
	ErrorTypeAPI ErrorType = "API"
	// ErrorTypeAuth marks responses that invalidate the current session.
	ErrorTypeAuth ErrorType = "AUTH"
	// ErrorTypeValidation covers payloads rejected before any network call.
	ErrorTypeValidation ErrorType = "VALIDATION"
)

// ClientError is the error value produced by the transport and the
// endpoint bindings.
type ClientError struct {
	Type       ErrorType
	Message    string
	HTTPStatus int
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// NewTransportError wraps a failed request or an unreadable response.
func NewTransportError(message string, cause error) *ClientError {
	if message == "" {
		message = "request failed"
	}
	return &ClientError{
		Type:    ErrorTypeTransport,
		Message: message,
		Cause:   cause,
	}
}

// NewAPIError creates an error from a non-2xx response. Unauthorized and
// forbidden statuses are classified as auth errors.
func NewAPIError(status int, message string) *ClientError {
	if message == "" {
		message = fmt.Sprintf("Request failed (%d)", status)
	}
	typ := ErrorTypeAPI
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		typ = ErrorTypeAuth
	}
	return &ClientError{
		Type:       typ,
		Message:    message,
		HTTPStatus: status,
	}
}

// NewValidationError creates a validation error for a payload rejected
// locally, before any network call.
func NewValidationError(message string) *ClientError {
	return &ClientError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// Message extracts the user-facing message from any error. Server-provided
// text survives intact; the fallback is used when err carries no text.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var ce *ClientError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// IsAuth reports whether the error marks an invalid or expired credential.
func IsAuth(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrorTypeAuth
}
