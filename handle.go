package taskrun

import (
	"context"
	"fmt"
)

// Handle is an in-flight unit of work. It settles exactly once, with either
// a value or an error, and stays settled.
type Handle struct {
	done  chan struct{}
	value any
	err   error
}

// Go starts fn in its own goroutine and returns a Handle for it. A panic in
// fn settles the Handle as failed instead of crashing the process; a panic
// raised by a stop trigger keeps its message as the failure.
func Go(fn func() (any, error)) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if se, ok := r.(*StopError); ok {
					h.err = se
				} else {
					h.err = fmt.Errorf("task panicked: %v", r)
				}
			}
			close(h.done)
		}()
		h.value, h.err = fn()
	}()
	return h
}

// settled returns a handle that has already settled with v and err.
func settled(v any, err error) *Handle {
	h := &Handle{done: make(chan struct{}), value: v, err: err}
	close(h.done)
	return h
}

// Done returns a channel that is closed once the handle settles.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the handle settles or ctx is done. It reports only the
// wait itself; a failed settlement is still a nil return here and is read
// via Err.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Value blocks until the handle settles and returns its value.
func (h *Handle) Value() any {
	<-h.done
	return h.value
}

// Err blocks until the handle settles and returns its failure, if any.
func (h *Handle) Err() error {
	<-h.done
	return h.err
}
