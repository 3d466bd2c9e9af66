package services

import (
	"fmt"
	"net/http"
)

// AuthError is returned when the provider rejects the credential (401/403).
type AuthError struct{ StatusCode int }

func (e *AuthError) Error() string {
	return fmt.Sprintf("openai rejected credential (status %d)", e.StatusCode)
}

// RateLimitError is returned when the provider answers 429.
type RateLimitError struct{ StatusCode int }

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("openai rate limit exceeded (status %d)", e.StatusCode)
}

// UpstreamError covers every other non-2xx provider status.
type UpstreamError struct{ StatusCode int }

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openai error (status %d)", e.StatusCode)
}

// MalformedResponseError is returned for a 2xx payload without choices[0].message.
type MalformedResponseError struct{}

func (e *MalformedResponseError) Error() string { return "unexpected openai response format" }

var statusErrors = map[int]func(status int) error{
	http.StatusUnauthorized:    func(status int) error { return &AuthError{StatusCode: status} },
	http.StatusForbidden:       func(status int) error { return &AuthError{StatusCode: status} },
	http.StatusTooManyRequests: func(status int) error { return &RateLimitError{StatusCode: status} },
}

// errorForStatus maps a non-2xx provider status onto its error kind.
func errorForStatus(status int) error {
	if newErr, ok := statusErrors[status]; ok {
		return newErr(status)
	}
	return &UpstreamError{StatusCode: status}
}
