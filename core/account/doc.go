// Package account handles authentication and the customer profile. Login
// and registration install a session into the configured store; logout is
// purely local and destroys the session without a network call.
package account
