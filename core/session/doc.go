// Package session models the storefront's client-side authentication state:
// a short-lived access token, the refresh token that can mint a new one, and
// the cached user profile.
//
// The Store interface is the "local storage" substitute: a small key-value
// persistence boundary for the session. Implementations in this package are
// in-memory (default) and file-backed; a redis-backed store lives in
// integration/sessionstore/redis.
//
// Write discipline: the whole session is written on login, only the access
// token is replaced on refresh, and the store is fully cleared on logout or
// irrecoverable authentication failure. Partial mutation of any other field
// is not supported. Only the request executor's refresh step may call
// SetAccessToken.
package session
