package talentrag

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Every failure returned by the client
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrRegistration      = errors.New("registration failed")
	ErrAuthentication    = errors.New("authentication failed")
	ErrTimeout           = errors.New("request timed out")
	ErrMalformedResponse = errors.New("malformed response")
	ErrNetwork           = errors.New("network error")
	ErrChatRequest       = errors.New("chat request failed")
)

// StatusError carries a non-2xx HTTP status together with the message the
// backend put in its error payload, when one could be parsed.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}
