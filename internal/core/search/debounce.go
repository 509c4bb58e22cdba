// Package search provides the debounced dispatch used by
// search-as-you-type inputs (place search, tag input). Each keystroke
// restarts a fixed delay; only the newest generation may publish its
// result, so a slow response can never overwrite a newer one.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
)

// Debouncer schedules at most one in-flight query per input stream.
type Debouncer[T any] struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer with the given settle delay.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{delay: delay}
}

// NewDefaultDebouncer creates a debouncer with the standard settle delay
// for search-as-you-type inputs.
func NewDefaultDebouncer[T any]() *Debouncer[T] {
	return NewDebouncer[T](constants.SearchDebounceDelay)
}

// Submit schedules fetch to run after the settle delay, cancelling any
// previously scheduled run. apply receives the result only when no newer
// submission happened in the meantime; stale results are dropped.
func (d *Debouncer[T]) Submit(ctx context.Context, fetch func(context.Context) (T, error), apply func(T, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		if !d.current(gen) || ctx.Err() != nil {
			return
		}
		result, err := fetch(ctx)
		// Re-check: a newer submission may have arrived while the
		// fetch was in flight.
		if !d.current(gen) {
			return
		}
		apply(result, err)
	})
}

// Cancel drops any pending or in-flight work without replacement.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}
