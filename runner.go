package taskrun

import (
	"context"
	"fmt"
	"sync"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

// Runner executes task lists under one fixed set of Options. It holds no
// per-run state and is safe for concurrent Run calls.
type Runner struct {
	opts Options
}

// New returns a Runner with opts normalized via FillDefaults.
func New(opts Options) *Runner {
	opts.FillDefaults()
	return &Runner{opts: opts}
}

// Run executes tasks with opts in a single call. Shorthand for
// New(opts).Run(ctx, tasks).
func Run(ctx context.Context, tasks []Task, opts Options) (Report, error) {
	return New(opts).Run(ctx, tasks)
}

// Run executes the task list and returns the partitioned report.
//
// The runner makes up to Retry.Attempts passes over the list. Each pass
// launches every task not yet completed, never keeping more than
// Concurrency tasks in flight at once, and waits for everything it launched
// to settle before the pass ends. Indices that settled successfully are
// never launched again; indices that failed are relaunched on the next
// pass, their slot overwritten. Final results keep input order.
//
// Task failures never fail the call: they end up in the report's Rejected
// partition. Run returns an error only for an unusable task list (see
// ErrNilTask). Canceling ctx halts new launches and new passes the same way
// the stop trigger does; tasks already in flight still run to completion
// and Run returns only after they settle.
func (r *Runner) Run(ctx context.Context, tasks []Task) (Report, error) {
	if len(tasks) == 0 {
		return Report{}, nil
	}
	for i, t := range tasks {
		if !t.valid() {
			return Report{}, fmt.Errorf("%w at index %d", ErrNilTask, i)
		}
	}

	logger := lg.FromContext(ctx).With(lg.String("run", uuid.NewString()))
	logger.Info("run started",
		lg.Int("tasks", len(tasks)),
		lg.Int("concurrency", r.opts.Concurrency),
		lg.Int("attempts", r.opts.Retry.Attempts),
	)

	st := &stopState{}
	stop := st.trigger()
	slots := make([]*Handle, len(tasks))
	completed := make([]bool, len(tasks))

	// pass makes one scan over the task list, launching everything still
	// eligible, and reports whether the completion set now covers every
	// index.
	pass := func(attempt int) bool {
		sem := make(chan struct{}, r.opts.Concurrency)
		var wg sync.WaitGroup
		launched := make([]int, 0, len(tasks))

	scan:
		for i := range tasks {
			if st.stopped() {
				logger.Warn("stop requested, halting launches",
					lg.Int("pass", attempt),
					lg.Int("next_index", i),
				)
				break
			}
			if completed[i] {
				continue
			}
			// Failed opaque handles cannot be relaunched; their slot
			// keeps the settled failure.
			if tasks[i].kind == kindHandle && slots[i] != nil {
				continue
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				break scan
			}
			// The flag may have been set while we were blocked on a slot.
			if st.stopped() {
				<-sem
				logger.Warn("stop requested, halting launches",
					lg.Int("pass", attempt),
					lg.Int("next_index", i),
				)
				break
			}

			h := tasks[i].normalize(stop)
			slots[i] = h
			launched = append(launched, i)
			r.opts.Metrics.IncInFlight()
			wg.Add(1)
			go func(h *Handle) {
				defer wg.Done()
				<-h.done
				r.opts.Metrics.DecInFlight()
				<-sem
			}(h)
		}

		wg.Wait()

		for _, i := range launched {
			if err := slots[i].err; err != nil {
				r.opts.Metrics.IncFailed()
				logger.Warn("task failed",
					lg.Int("index", i),
					lg.Int("pass", attempt),
					lg.Any("error", err),
				)
				r.reportTaskError(i, attempt, err)
				continue
			}
			completed[i] = true
			r.opts.Metrics.IncExecuted()
		}

		remaining := 0
		for i := range completed {
			if !completed[i] {
				remaining++
			}
		}
		logger.Info("pass finished",
			lg.Int("pass", attempt),
			lg.Int("launched", len(launched)),
			lg.Int("remaining", remaining),
		)
		return remaining == 0
	}

	nextDelay := r.delayFunc()

	for attempt := 1; attempt <= r.opts.Retry.Attempts; attempt++ {
		if st.stopped() {
			logger.Warn("stop requested, skipping remaining passes", lg.Int("pass", attempt))
			break
		}
		if ctx.Err() != nil {
			logger.Info("run canceled", lg.Any("reason", ctx.Err()))
			break
		}

		if pass(attempt) {
			break
		}
		if attempt == r.opts.Retry.Attempts {
			break
		}

		if delay := nextDelay(); delay > 0 {
			logger.Info("pass incomplete, waiting before retry",
				lg.Int("pass", attempt),
				lg.String("sleep", delay.String()),
			)
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				logger.Info("run canceled during retry wait", lg.Any("reason", ctx.Err()))
			}
		}
	}

	rep := aggregate(slots)
	logger.Info("run finished",
		lg.Int("resolved", len(rep.Resolved)),
		lg.Int("rejected", len(rep.Rejected)),
	)
	return rep, nil
}

// delayFunc returns the inter-pass delay source: exponential backoff when
// Retry.Initial is set, the fixed Retry.Wait otherwise.
func (r *Runner) delayFunc() func() time.Duration {
	if r.opts.Retry.Initial > 0 {
		bo := boff.New(r.opts.Retry.Initial, r.opts.Retry.Max, time.Now().UnixNano())
		return bo.Next
	}
	return func() time.Duration { return r.opts.Retry.Wait }
}
