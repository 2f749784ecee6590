package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Config holds executor configuration, loadable via core/config.
type Config struct {
	// BaseURL is the API root, e.g. https://api.example.com/api.
	BaseURL string `env:"STOREFRONT_API_URL,required"`

	// Timeout bounds a single network attempt. A timed-out attempt
	// surfaces as ErrNetwork rather than an indefinitely stuck call.
	Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"15s"`

	// RefreshPath is the token refresh endpoint, relative to BaseURL.
	RefreshPath string `env:"STOREFRONT_API_REFRESH_PATH" envDefault:"/auth/refresh-token"`
}

// Option configures optional executor behavior.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, primarily for tests
// and custom transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger for request/refresh diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCircuitBreaker wraps every network attempt in a circuit breaker.
// An open breaker surfaces as ErrNetwork without touching the session.
func WithCircuitBreaker(settings gobreaker.Settings) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(settings)
	}
}

// DefaultBreakerSettings trips after a 60% failure ratio over at least
// three requests, the thresholds used across our service clients.
func DefaultBreakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 100,
		Interval:    5 * time.Second,
		Timeout:     3 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	}
}
