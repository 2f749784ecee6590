package session

import "context"

// Store persists the client session. Implementations must be safe for
// concurrent use: interleaved API calls read the session while a refresh
// may be replacing the access token.
type Store interface {
	// Load returns the persisted session, or ErrNotFound for an anonymous client.
	Load(ctx context.Context) (Session, error)

	// Save replaces the persisted session wholly (login, profile update).
	Save(ctx context.Context, sess Session) error

	// SetAccessToken replaces only the access token of the persisted session.
	// Returns ErrNotFound if no session exists. Reserved for the request
	// executor's refresh step.
	SetAccessToken(ctx context.Context, token string) error

	// Clear removes the session entirely. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
