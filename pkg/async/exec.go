package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
var ErrTimeout = errors.New("async: await timed out")

// Future represents the result of an asynchronous operation that resolves
// to an error. The zero value is not usable; create futures with Exec.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the operation completes and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for completion up to the given duration.
// Returns ErrTimeout if the operation has not resolved in time; the
// operation itself keeps running.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn in a new goroutine and returns a Future resolving to its error.
// A pre-canceled context resolves the future immediately without invoking fn.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// All awaits every future and returns the first error encountered, in order.
func All(futures ...*Future) error {
	for _, future := range futures {
		if err := future.Await(); err != nil {
			return err
		}
	}
	return nil
}
