package taskrun

import (
	"sync/atomic"
)

// StopFunc requests cooperative cancellation of the run that injected it.
// Calling it sets the run's stop flag: no new task starts in the current or
// any later pass, while tasks already in flight run to completion and keep
// their outcomes. A non-empty message additionally fails the calling task
// with that message, by panicking with a *StopError that the launch wrapper
// recovers. Call it with a message only from inside the task body.
type StopFunc func(message ...string)

// StopError is the failure carried by a task that stopped the run with a
// message.
type StopError struct {
	Message string
}

func (e *StopError) Error() string { return e.Message }

// stopState is the shared cancellation flag for one run. The flag is set
// from task goroutines and read by the driver, hence the atomic; once set
// it never clears within the run.
type stopState struct {
	flag atomic.Bool
}

func (s *stopState) stopped() bool { return s.flag.Load() }

// trigger returns the StopFunc handed to callable tasks.
func (s *stopState) trigger() StopFunc {
	return func(message ...string) {
		s.flag.Store(true)
		if len(message) > 0 && message[0] != "" {
			panic(&StopError{Message: message[0]})
		}
	}
}
