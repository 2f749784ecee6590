package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gemshop/storefront/core/logger"
	"github.com/gemshop/storefront/core/session"
	"github.com/gemshop/storefront/pkg/async"
)

// refresh coalesces concurrent refresh attempts into one in-flight call.
// Two requests hitting 401 at the same time must not race the refresh token
// against the backend; the second caller awaits the first's future.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	if c.refreshing == nil || c.refreshing.IsComplete() {
		// Detached context: the refresh outcome is shared state, so one
		// caller's cancellation must not fail every other awaiter.
		c.refreshing = async.Exec(context.WithoutCancel(ctx), struct{}{},
			func(ctx context.Context, _ struct{}) error {
				return c.doRefresh(ctx)
			})
	}
	future := c.refreshing
	c.refreshMu.Unlock()

	return future.Await()
}

// doRefresh exchanges the refresh token for a new access token. It is the
// only writer of the persisted access token. A server-rejected refresh
// clears the whole session; a transport failure leaves it intact so the
// user can retry.
func (c *Client) doRefresh(ctx context.Context) error {
	sess, err := c.sessions.Load(ctx)
	if err != nil || sess.RefreshToken == "" {
		c.clearSession(ctx)
		return ErrUnauthenticated
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": sess.RefreshToken})
	if err != nil {
		return fmt.Errorf("client: failed to encode refresh request: %w", err)
	}

	result, err := c.attempt(ctx, http.MethodPost, c.refreshPath, payload, "")
	if err != nil {
		return err
	}

	if result.status < 200 || result.status > 299 {
		c.clearSession(ctx)
		c.log.Info("session cleared after refresh rejection", logger.Status(result.status))
		if msg := serverMessage(result.body); msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthenticated, msg)
		}
		return ErrUnauthenticated
	}

	var refreshResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(result.body, &refreshResp); err != nil || refreshResp.Token == "" {
		c.clearSession(ctx)
		return ErrUnauthenticated
	}

	if err := c.sessions.SetAccessToken(ctx, refreshResp.Token); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrUnauthenticated
		}
		return errors.Join(ErrUnauthenticated, err)
	}
	return nil
}

func (c *Client) clearSession(ctx context.Context) {
	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Warn("failed to clear session", logger.Error(err))
	}
}
