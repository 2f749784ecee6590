package account

import "errors"

var (
	// ErrMissingEmail rejects auth operations without an email address.
	ErrMissingEmail = errors.New("account: email is required")
	// ErrMissingPassword rejects auth operations without a password.
	ErrMissingPassword = errors.New("account: password is required")
	// ErrMissingName rejects registration without a display name.
	ErrMissingName = errors.New("account: name is required")
	// ErrMissingToken rejects a password reset without a reset token.
	ErrMissingToken = errors.New("account: reset token is required")
)

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries a signup attempt.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the customer profile as served by the API.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
