package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gemshop/storefront/core/session"
)

// Store persists the session as a JSON value under a single key.
type Store struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ session.Store = (*Store)(nil)

// NewStore creates a session store over an established Redis client.
func NewStore(client *redis.Client, cfg Config) *Store {
	key := cfg.SessionKey
	if key == "" {
		key = "storefront:session"
	}
	return &Store{client: client, key: key, ttl: cfg.SessionTTL}
}

// Load returns the persisted session, or session.ErrNotFound when the key
// is absent or holds a value that no longer decodes.
func (s *Store) Load(ctx context.Context) (session.Session, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("redis: failed to load session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

// Save replaces the persisted session wholly.
func (s *Store) Save(ctx context.Context, sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis: failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to save session: %w", err)
	}
	return nil
}

// SetAccessToken replaces only the access token of the persisted session.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	sess, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Save(ctx, sess.WithAccessToken(token))
}

// Clear removes the session. Clearing an absent key is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis: failed to clear session: %w", err)
	}
	return nil
}
