package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gemshop/storefront/core/logger"
	"github.com/gemshop/storefront/core/session"
	"github.com/gemshop/storefront/pkg/async"
)

// Client executes API calls with transparent access-token refresh.
type Client struct {
	baseURL     string
	timeout     time.Duration
	refreshPath string

	httpClient *http.Client
	sessions   session.Store
	log        *slog.Logger
	breaker    *gobreaker.CircuitBreaker

	refreshMu  sync.Mutex
	refreshing *async.Future
}

// New creates a request executor over the given session store.
func New(cfg Config, sessions session.Store, opts ...Option) (*Client, error) {
	if sessions == nil {
		return nil, fmt.Errorf("%w: session store is required", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: BaseURL must be an http(s) URL", ErrInvalidConfig)
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.Timeout,
		refreshPath: cfg.RefreshPath,
		httpClient:  &http.Client{},
		sessions:    sessions,
		log:         slog.Default(),
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}
	if c.refreshPath == "" {
		c.refreshPath = "/auth/refresh-token"
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Sessions exposes the session store the executor persists tokens in.
func (c *Client) Sessions() session.Store {
	return c.sessions
}

// Do performs one logical API call and decodes the JSON response into out
// (skipped when out is nil or the body is empty).
//
// For authenticated requests a 401 triggers a single coalesced token
// refresh followed by exactly one retry with the new token. A second 401
// after refresh clears the session and returns ErrUnauthenticated.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	start := time.Now()

	var payload []byte
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("client: failed to encode request body: %w", err)
		}
		payload = data
	}

	token := ""
	if !req.NoAuth {
		sess, err := c.sessions.Load(ctx)
		if err != nil || !sess.IsAuthenticated() {
			return ErrUnauthenticated
		}
		token = sess.AccessToken

		// An access token that is a JWT with a past expiry is guaranteed to
		// bounce; refresh up front and save the doomed round trip. Opaque
		// tokens fall through to the reactive 401 path.
		if tokenExpired(token) {
			if err := c.refresh(ctx); err != nil {
				return err
			}
			sess, err = c.sessions.Load(ctx)
			if err != nil {
				return ErrUnauthenticated
			}
			token = sess.AccessToken
		}
	}

	result, err := c.attempt(ctx, req.Method, req.Path, payload, token)
	if err != nil {
		return err
	}

	if result.status == http.StatusUnauthorized && !req.NoAuth {
		if err := c.refresh(ctx); err != nil {
			return err
		}

		sess, err := c.sessions.Load(ctx)
		if err != nil || !sess.IsAuthenticated() {
			return ErrUnauthenticated
		}

		result, err = c.attempt(ctx, req.Method, req.Path, payload, sess.AccessToken)
		if err != nil {
			return err
		}
		if result.status == http.StatusUnauthorized {
			// The freshly minted token was rejected too; give up.
			if clearErr := c.sessions.Clear(ctx); clearErr != nil {
				c.log.Warn("failed to clear session", logger.Error(clearErr))
			}
			return ErrUnauthenticated
		}
	}

	c.log.Debug("api call",
		logger.Endpoint(req.Method, req.Path),
		logger.Status(result.status),
		logger.Elapsed(start),
	)

	if result.status < 200 || result.status > 299 {
		return newAPIError(result.status, serverMessage(result.body))
	}

	if out != nil && len(result.body) > 0 {
		if err := json.Unmarshal(result.body, out); err != nil {
			return fmt.Errorf("client: failed to decode response: %w", err)
		}
	}
	return nil
}

type attemptResult struct {
	status int
	body   []byte
}

// attempt performs a single bounded network attempt. Transport failures,
// timeouts, and an open breaker all surface as ErrNetwork.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, token string) (attemptResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+path, body)
	if err != nil {
		return attemptResult{}, fmt.Errorf("client: failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.send(httpReq)
	if err != nil {
		return attemptResult{}, errors.Join(ErrNetwork, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptResult{}, errors.Join(ErrNetwork, err)
	}

	return attemptResult{status: resp.StatusCode, body: data}, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.httpClient.Do(req)
	}

	resp, err := c.breaker.Execute(func() (any, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*http.Response), nil
}

// serverMessage extracts the conventional {"message": "..."} error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
