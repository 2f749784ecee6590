// Package client implements the authenticated request executor for the
// storefront REST API.
//
// Every logical call goes through Client.Do, which attaches the bearer
// access token, detects 401 responses, performs a single token refresh via
// the refresh endpoint, and retries the original request exactly once before
// surfacing failure. There are no unbounded retry loops: one refresh, one
// retry, per logical call.
//
// Concurrent 401 handlers coalesce into a single in-flight refresh; later
// callers await the same future instead of racing the refresh token against
// the backend.
//
// The error taxonomy callers dispatch on:
//
//   - ErrUnauthenticated: no usable session, or the refresh was rejected.
//     The session store has been cleared; redirect the user to login.
//   - ErrNetwork: transport failure or timeout. The session is intact and
//     the user may retry manually.
//   - *APIError: the server answered with a non-2xx status and a message.
//     Surface the message verbatim; no client state was corrupted.
//
// A bounded per-attempt timeout (default 15s) converts a stuck request into
// ErrNetwork instead of an indefinitely in-flight call. An optional circuit
// breaker (sony/gobreaker) can shed load from a failing backend; an open
// breaker also surfaces as ErrNetwork.
package client
