package taskrun

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the runner to report launch and
// settlement activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncExecuted increments the successful-settlement counter.
	IncExecuted()

	// IncFailed increments the failed-settlement counter.
	//
	// A task that fails on several passes is counted once per pass.
	IncFailed()

	// IncInFlight records one more task in flight.
	IncInFlight()

	// DecInFlight records one task leaving flight after settling.
	DecInFlight()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of successful settlements.
	executed atomic.Uint64

	// failed is the total number of failed settlements, across passes.
	failed atomic.Uint64

	_ [48]byte // padding to avoid false sharing

	// inFlight is the current number of launched, unsettled tasks.
	inFlight atomic.Int64

	// peak is the high-water mark of inFlight.
	peak atomic.Int64
}

// Executed returns the total number of successful settlements.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Failed returns the total number of failed settlements.
// Intended for cold-path observation.
func (m *AtomicMetrics) Failed() uint64 {
	return m.failed.Load()
}

// InFlight returns the current number of in-flight tasks.
func (m *AtomicMetrics) InFlight() int64 {
	return m.inFlight.Load()
}

// Peak returns the highest number of tasks that were in flight at once.
func (m *AtomicMetrics) Peak() int64 {
	return m.peak.Load()
}

// IncExecuted increments the successful-settlement counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncFailed increments the failed-settlement counter by one.
func (m *AtomicMetrics) IncFailed() {
	m.failed.Add(1)
}

// IncInFlight increments the in-flight gauge and advances the high-water
// mark when passed.
func (m *AtomicMetrics) IncInFlight() {
	n := m.inFlight.Add(1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			return
		}
	}
}

// DecInFlight decrements the in-flight gauge.
func (m *AtomicMetrics) DecInFlight() {
	m.inFlight.Add(-1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncExecuted() {}
func (m *NoopMetrics) IncFailed()   {}
func (m *NoopMetrics) IncInFlight() {}
func (m *NoopMetrics) DecInFlight() {}
