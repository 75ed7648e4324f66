package cache

import "context"

// flight tracks one in-flight computation for a missing key. The computing
// goroutine owns the value and err fields until it closes done; waiters may
// only read them after done is closed.
type flight[V any] struct {
	done  chan struct{}
	value V
	err   error
}

func newFlight[V any]() *flight[V] {
	return &flight[V]{done: make(chan struct{})}
}

// publish records the computation outcome and releases all waiters.
// Must be called exactly once.
func (f *flight[V]) publish(value V, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// await blocks until the computation publishes or the waiter's context is
// cancelled. Cancellation affects only this waiter; the computation keeps
// running for the rest.
func (f *flight[V]) await(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		if f.err != nil {
			var zero V
			return zero, f.err
		}
		return f.value, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
