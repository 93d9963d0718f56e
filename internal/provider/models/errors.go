package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider failures.
var (
	// ErrTimeout is returned when an upstream call loses the deadline race.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrUnsupportedCapability is returned by backends that cannot serve an operation.
	ErrUnsupportedCapability = errors.New("capability not supported by provider")

	// ErrEmptyResponse is returned when the provider answered with no usable payload.
	ErrEmptyResponse = errors.New("empty response from provider")
)

// ErrorCode represents a provider error code.
type ErrorCode string

const (
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodePermission     ErrorCode = "permission_denied"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeAPI            ErrorCode = "api_error"
)

// ProviderError wraps an upstream API error with its HTTP status.
type ProviderError struct {
	Code       ErrorCode
	Status     int
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// CodeForStatus maps an HTTP status to an ErrorCode.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == 401:
		return ErrorCodeAuth
	case status == 403:
		return ErrorCodePermission
	case status == 429:
		return ErrorCodeRateLimit
	case status == 400:
		return ErrorCodeInvalidRequest
	case status >= 500:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeAPI
	}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Status
	}
	return 0
}
