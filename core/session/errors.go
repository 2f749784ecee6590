package session

import "errors"

var (
	// ErrNotFound is returned when no session is persisted (anonymous client).
	ErrNotFound = errors.New("session not found")
	// ErrMissingAccessToken is returned when creating a session without an access token.
	ErrMissingAccessToken = errors.New("access token is required")
	// ErrMissingRefreshToken is returned when creating a session without a refresh token.
	// An access token must always be paired with a refresh token capable of replacing it.
	ErrMissingRefreshToken = errors.New("refresh token is required")
	// ErrSaveSession is returned when persisting a session fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrClearSession is returned when clearing the session store fails.
	ErrClearSession = errors.New("failed to clear session")
)
