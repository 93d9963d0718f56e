// Package classify maps upstream failures to a fixed set of user-facing categories.
package classify

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/Cyclone1070/oaimcp/internal/provider/models"
)

// Category is a user-facing error class.
type Category string

const (
	Timeout              Category = "timeout"
	AuthInvalid          Category = "auth_invalid"
	RateLimited          Category = "rate_limited"
	ContentPolicyBlocked Category = "content_policy_blocked"
	NetworkUnreachable   Category = "network_unreachable"
	Unknown              Category = "unknown"
)

// Categories lists every category in precedence order.
var Categories = []Category{Timeout, AuthInvalid, RateLimited, ContentPolicyBlocked, NetworkUnreachable, Unknown}

var templates = map[Category]string{
	Timeout:              "The request timed out before the provider responded. It may still be running upstream; try again or simplify the request.",
	AuthInvalid:          "Authentication with the provider failed. Check that the API key is valid and has access to the requested model.",
	RateLimited:          "The provider rate limit was exceeded. Wait a moment before trying again.",
	ContentPolicyBlocked: "The request was blocked by the provider's content policy. Rephrase the request and try again.",
	NetworkUnreachable:   "Could not reach the provider. Check network connectivity and the configured base URL.",
	Unknown:              "The provider request failed: ",
}

var contentPolicyMarkers = []string{"safety", "content_policy", "content policy", "moderation"}

var networkMarkers = []string{
	"fetch failed",
	"connection refused",
	"connection reset",
	"no such host",
	"network is unreachable",
	"econnrefused",
	"enotfound",
	"econnreset",
	"etimedout",
}

// Error is a classified failure safe to show to the caller.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

// Classify maps err to exactly one category using first-match precedence:
// timeout sentinel, auth status, rate-limit status, content-policy 400,
// connection failure, unknown.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrTimeout) {
		return newError(Timeout)
	}

	status := models.StatusOf(err)
	msg := strings.ToLower(err.Error())

	switch {
	case status == 401 || status == 403:
		return newError(AuthInvalid)
	case status == 429:
		return newError(RateLimited)
	case status == 400 && containsAny(msg, contentPolicyMarkers):
		return newError(ContentPolicyBlocked)
	case isNetworkError(err) || containsAny(msg, networkMarkers):
		return newError(NetworkUnreachable)
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Category: Unknown, Message: "The request was cancelled."}
	}

	return &Error{Category: Unknown, Message: templates[Unknown] + rawMessage(err)}
}

func newError(c Category) *Error {
	return &Error{Category: c, Message: templates[c]}
}

func isNetworkError(err error) bool {
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ETIMEDOUT,
		syscall.EHOSTUNREACH,
		syscall.ENETUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// rawMessage prefers the provider's own message over the wrapped chain.
func rawMessage(err error) string {
	var providerErr *models.ProviderError
	if errors.As(err, &providerErr) && providerErr.Message != "" {
		return providerErr.Message
	}
	return err.Error()
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
