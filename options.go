package taskrun

// DefaultConcurrency is the in-flight cap used when Options.Concurrency is
// left zero.
const DefaultConcurrency = 10

// Options configure a Runner.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Concurrency caps the number of simultaneously in-flight tasks.
	// Zero selects DefaultConcurrency; negative values are clamped to 1.
	Concurrency int

	// Retry bounds the pass budget and the delay between passes.
	Retry RetryPolicy

	// Metrics receives launch and settlement counters. Nil selects
	// NoopMetrics.
	Metrics MetricsPolicy

	// OnTaskError, when set, is called for every failed settlement with
	// the task's index, the pass number, and the failure. Called from the
	// driver goroutine, in index order within a pass; it never stops the
	// run.
	OnTaskError func(index, attempt int, err error)
}

func (o *Options) FillDefaults() {
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.Retry.Attempts == 0 {
		o.Retry.Attempts = defaultAttempts
	}
	if o.Retry.Attempts < 1 {
		o.Retry.Attempts = 1
	}
	if o.Retry.Initial > 0 && o.Retry.Max <= 0 {
		o.Retry.Max = defaultBackoffMax
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
