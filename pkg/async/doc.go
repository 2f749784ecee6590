// Package async provides a minimal future type for tracking asynchronous
// operations that resolve to an error.
//
// The SDK uses it to coalesce concurrent token refreshes (every caller that
// hits a 401 awaits the same in-flight refresh) and to expose fire-and-forget
// variants of collection mutations.
//
//	future := async.Exec(ctx, token, refreshFn)
//	// ... concurrent callers share the same future ...
//	if err := future.Await(); err != nil {
//		// refresh failed, session was cleared
//	}
package async
