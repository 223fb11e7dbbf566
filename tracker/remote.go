package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Remote models the request leg of a store operation. The store is
// specified as if backed by a service with real latency and failure modes;
// Do is invoked once per mutation before any state is touched. A real
// network client slots in here.
type Remote interface {
	Do(ctx context.Context, op string) error
}

// NopRemote completes every request immediately.
type NopRemote struct{}

// Do implements Remote.
func (NopRemote) Do(ctx context.Context, op string) error {
	return ctx.Err()
}

// SimulatedRemote adds latency and injected failures to store operations,
// standing in for a flaky backing service.
type SimulatedRemote struct {
	// Latency is how long each request takes.
	Latency time.Duration

	// FailEvery makes every nth request fail with ErrTransient.
	// Zero disables injection.
	FailEvery int

	mu    sync.Mutex
	calls int
}

// Do implements Remote.
func (r *SimulatedRemote) Do(ctx context.Context, op string) error {
	if r.Latency > 0 {
		timer := time.NewTimer(r.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if r.FailEvery > 0 {
		r.mu.Lock()
		r.calls++
		nth := r.calls%r.FailEvery == 0
		r.mu.Unlock()
		if nth {
			return fmt.Errorf("%w: %s", ErrTransient, op)
		}
	}

	return ctx.Err()
}

// FailingRemote fails every request with ErrTransient. Used to exercise
// rollback paths.
type FailingRemote struct{}

// Do implements Remote.
func (FailingRemote) Do(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrTransient, op)
}
