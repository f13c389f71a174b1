// Package taskrun executes a heterogeneous list of tasks under a bounded
// concurrency limit, retrying failures across passes and returning a
// partitioned report of successes and failures in input order.
//
// # Task model
//
// A task is one of three things:
//
//   - An immediate value (Value), which settles successfully as-is.
//   - A callable (Func), invoked with the run's stop trigger; its return
//     value or error becomes the task's outcome.
//   - An already started Handle (FromHandle), produced by Go.
//
// All three are normalized to a Handle before execution, so downstream
// handling is uniform. Pre-started handles are opaque to the runner: they
// never receive the stop trigger, and because they cannot be relaunched a
// failed one stays failed no matter how many passes remain.
//
// # Execution model
//
// The runner makes passes over the task list, bounded by the attempts
// budget in RetryPolicy. A pass launches every index not yet in the
// completion set, in input order, while a channel semaphore keeps the
// number of simultaneously in-flight tasks at or below the configured
// limit; a slot is freed by whichever task settles first, not by launch
// order. The pass ends once everything it launched has settled. Successful
// indices join the completion set and are never launched again; failed
// indices are relaunched on the next pass, their result slot overwritten.
// Between incomplete passes the runner sleeps the configured fixed wait,
// or an exponential backoff when one is configured.
//
// # Cancellation
//
// Cancellation is cooperative only. Every callable task receives a StopFunc;
// calling it sets a shared flag that stops any not-yet-started task from
// launching, in the current pass and every later one. Tasks already in
// flight are never interrupted: they run to completion and their outcomes
// still appear in the report. Calling the trigger with a message also fails
// the calling task with that message. Canceling the run's context gates
// launches the same way.
//
// # Results
//
// Run always returns a Report; task failures never fail the call. The
// report partitions outcomes into Resolved values and Rejected error
// strings, both in input order regardless of settlement order. An empty
// task list returns an empty report immediately, without a pass or a wait.
//
// # Errors
//
// Failures are recorded per index and retried within the budget; panics
// inside a callable settle that task as failed rather than crashing the
// process. Only an unusable task list (a nil callable or nil handle) fails
// Run itself, fast, before any pass starts.
package taskrun
