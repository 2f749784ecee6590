// Package mutation implements optimistic collection mutations with rollback.
//
// A Controller owns one collection (the cart, the wishlist) and processes
// mutations one at a time: validate locally, snapshot the collection, apply
// the change immediately, send the server operation, then reconcile. On
// success the server's returned collection is authoritative when provided;
// on any failure the snapshot is restored exactly. The visible state is
// therefore always fully pre-mutation or fully post-mutation, never a blend.
//
// Each mutation instance moves through
//
//	Idle → Validating → (Rejected | Applying) → AwaitingServer → (Committed | RolledBack)
//
// with Rejected, Committed, and RolledBack terminal. Rejected mutations
// make no network call and leave the collection untouched.
//
// Mutations on the same controller are serialized: a second mutation's
// snapshot-and-apply cannot begin while an earlier one is between apply and
// resolve, otherwise rolling back the first would silently erase the
// second's effect. Reads via State never block on an in-flight mutation and
// observe the optimistic state.
package mutation
