// Package checkout drives the order flow: delivery addresses, order
// creation against the payment gateway, payment verification, and order
// history. Checkout operations are plain authenticated calls; nothing here
// is optimistic because an order either exists on the server or it does not.
package checkout
