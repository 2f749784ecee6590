// Package redis persists the client session in Redis, for storefront
// processes that share one customer session across restarts or replicas
// (kiosk fleets, headless order bots).
//
// Connect validates the connection URL, retries with backoff, and verifies
// connectivity with a ping before returning the client. The Store satisfies
// session.Store; a missing key maps to session.ErrNotFound.
package redis
