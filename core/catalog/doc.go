// Package catalog reads the public product and jewelry listings. Catalog
// reads need no session; they go out unauthenticated and never trigger a
// token refresh.
package catalog
