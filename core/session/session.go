package session

import "time"

// User is the customer profile cached alongside the tokens.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the client's authentication state. It is created whole on
// login, has its access token replaced on refresh, and is destroyed whole
// on logout or irrecoverable authentication failure.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         User      `json:"user"`
	LoggedIn     bool      `json:"logged_in"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New creates an authenticated session from a login response.
// Both tokens are required: an access token without a refresh token cannot
// survive expiry and would strand the user mid-session.
func New(accessToken, refreshToken string, user User) (Session, error) {
	if accessToken == "" {
		return Session{}, ErrMissingAccessToken
	}
	if refreshToken == "" {
		return Session{}, ErrMissingRefreshToken
	}

	now := time.Now()
	return Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		LoggedIn:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAuthenticated reports whether the session can authorize API calls.
func (s Session) IsAuthenticated() bool {
	return s.LoggedIn && s.AccessToken != ""
}

// WithAccessToken returns a copy with a replaced access token.
// Used exclusively by the refresh step.
func (s Session) WithAccessToken(token string) Session {
	s.AccessToken = token
	s.UpdatedAt = time.Now()
	return s
}

// WithUser returns a copy with an updated cached profile.
func (s Session) WithUser(user User) Session {
	s.User = user
	s.UpdatedAt = time.Now()
	return s
}
