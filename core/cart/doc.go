// Package cart maintains the customer's shopping cart against the
// storefront API with optimistic updates.
//
// Quantity changes, removals, and clears apply to the local collection
// immediately and roll back if the server rejects them, so the visible cart
// is never a partial blend of old and new state. The subtotal is a derived
// value, recomputed locally on optimistic changes and replaced by the
// server's figure once confirmed.
package cart
