package session

import (
	"context"
	"sync"
)

// MemoryStore is the default in-process session store. Suitable for tests
// and short-lived clients that do not need the session to outlive the
// process.
type MemoryStore struct {
	mu   sync.RWMutex
	sess *Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sess == nil {
		return Session{}, ErrNotFound
	}
	return *s.sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = &sess
	return nil
}

func (s *MemoryStore) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return ErrNotFound
	}
	updated := s.sess.WithAccessToken(token)
	s.sess = &updated
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = nil
	return nil
}
