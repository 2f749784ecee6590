package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no token is present or the refresh
	// step failed. The persisted session has been cleared by the time callers
	// see this error; the expected reaction is a redirect to login.
	ErrUnauthenticated = errors.New("client: unauthenticated")

	// ErrNetwork is returned on transport failures, per-attempt timeouts,
	// and an open circuit breaker. Recoverable: the caller may retry.
	ErrNetwork = errors.New("client: network failure")

	// ErrInvalidConfig is returned by New for unusable configuration.
	ErrInvalidConfig = errors.New("client: invalid configuration")
)

// APIError is a server-rejected request: any non-2xx, non-401 response.
// Message carries the server-supplied text verbatim for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// newAPIError builds an APIError, falling back to the standard status text
// when the server did not supply a message.
func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}
