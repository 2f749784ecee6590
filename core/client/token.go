package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether the access token is a JWT whose expiry has
// passed. The claims are read without signature verification; verification
// is the backend's job, we only want the exp timestamp. Opaque tokens and
// tokens without exp return false and rely on the reactive 401 path.
func tokenExpired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
