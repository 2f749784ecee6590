// Package wishlist maintains the customer's wishlist against the
// storefront API with the same optimistic update discipline as the cart:
// additions and removals apply locally at once and roll back when the
// server rejects them.
package wishlist
