package taskrun

import (
	"errors"
)

// ErrNilTask is returned by Run when the task list contains a callable or
// handle task with nothing behind it.
var ErrNilTask = errors.New("taskrun: nil task")

// TaskFunc is the callable form of a task. It receives the run's stop
// trigger and returns the task's value or an error. Returning an error
// leaves the task eligible for the next pass.
type TaskFunc func(stop StopFunc) (any, error)

type taskKind int

const (
	kindValue taskKind = iota
	kindFunc
	kindHandle
)

// Task is one unit of work: an immediate value, a callable, or an already
// started Handle. The zero value is a value task carrying nil.
type Task struct {
	kind   taskKind
	value  any
	fn     TaskFunc
	handle *Handle
}

// Value wraps an immediate value as a task that settles successfully with it.
func Value(v any) Task {
	return Task{kind: kindValue, value: v}
}

// Func wraps a callable as a task. The callable is invoked once per pass
// until it succeeds or the attempts budget runs out; each invocation
// receives the run's stop trigger.
func Func(fn TaskFunc) Task {
	return Task{kind: kindFunc, fn: fn}
}

// FromHandle hands an already started Handle to the runner. Such handles are
// opaque: they never receive the stop trigger and cannot be relaunched, so a
// handle that settles failed stays failed regardless of the attempts budget.
func FromHandle(h *Handle) Task {
	return Task{kind: kindHandle, handle: h}
}

// normalize maps a task to its handle. Values become settled handles,
// callables are launched with the stop trigger injected, handles pass
// through untouched. Never fails; nil callables are rejected by Run
// before any pass starts.
func (t Task) normalize(stop StopFunc) *Handle {
	switch t.kind {
	case kindFunc:
		fn := t.fn
		return Go(func() (any, error) { return fn(stop) })
	case kindHandle:
		return t.handle
	default:
		return settled(t.value, nil)
	}
}

// valid reports whether the task can be launched at all.
func (t Task) valid() bool {
	switch t.kind {
	case kindFunc:
		return t.fn != nil
	case kindHandle:
		return t.handle != nil
	default:
		return true
	}
}
