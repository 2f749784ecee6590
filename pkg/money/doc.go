// Package money handles price rounding and display formatting for the
// storefront, which trades in Indian rupees.
//
// Amounts travel through the API as plain JSON numbers; this package owns
// the single rounding rule (two decimal places, half away from zero) and
// locale-aware formatting so the rest of the SDK never calls math or
// formatting primitives directly.
package money
