package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the session as a JSON file so it survives process
// restarts, mirroring browser local storage. Writes go through a temp file
// and rename so a crash never leaves a truncated session on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed session store at the given path.
// The parent directory is created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session: file store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session: failed to create store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileStore) Save(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(sess)
}

func (s *FileStore) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.read()
	if err != nil {
		return err
	}
	return s.write(sess.WithAccessToken(token))
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrClearSession, err)
	}
	return nil
}

func (s *FileStore) read() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("session: failed to read store file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupted session file is unrecoverable client state; treat it
		// as anonymous rather than blocking every request.
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *FileStore) write(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrSaveSession, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Join(ErrSaveSession, err)
	}
	return nil
}
