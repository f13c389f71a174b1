package taskrun

import (
	"time"
)

const (
	defaultAttempts   = 2
	defaultBackoffMax = 5 * time.Second
)

// RetryPolicy describes how many passes a run may make over its task list
// and how long to pause between them. Zero values are treated as "use
// defaults".
type RetryPolicy struct {
	// Attempts is the total pass budget, counting the first pass. Zero
	// selects the default of 2; values below 1 clamp to 1 (a single pass,
	// no retries).
	Attempts int

	// Wait is a fixed pause between passes. Zero means no pause.
	Wait time.Duration

	// Initial, when positive, switches the inter-pass pause to an
	// exponential backoff starting at Initial and capped at Max,
	// overriding Wait.
	Initial time.Duration

	// Max caps the backoff pause. Ignored unless Initial is set.
	Max time.Duration
}

// DefaultRetry returns the retry policy a zero-value Options resolves to.
// Useful in tests or when constructing a runner with the same defaults.
func DefaultRetry() RetryPolicy {
	return RetryPolicy{Attempts: defaultAttempts}
}
