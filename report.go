package taskrun

import (
	"fmt"
)

// Report is the partitioned outcome of one run. Resolved holds the values
// of successful tasks and Rejected the stringified failures, each in input
// order. A partition with no entries is left nil, so an all-success run has
// only Resolved and an all-failure run only Rejected.
type Report struct {
	Resolved []any
	Rejected []string
}

// aggregate resolves the slot array into a report. The traversal is
// sequential and index-ordered, so both partitions preserve input order
// rather than settlement order. Nil slots (tasks never launched because the
// run was stopped or canceled) appear in neither partition.
func aggregate(slots []*Handle) Report {
	var rep Report
	for _, h := range slots {
		if h == nil {
			continue
		}
		<-h.done
		if h.err != nil {
			rep.Rejected = append(rep.Rejected, h.err.Error())
			continue
		}
		rep.Resolved = append(rep.Resolved, h.value)
	}
	return rep
}

// Ok reports whether the run produced no failures.
func (r Report) Ok() bool {
	return len(r.Rejected) == 0
}

// Succeeded returns the number of successful tasks.
func (r Report) Succeeded() int {
	return len(r.Resolved)
}

// Failed returns the number of failed tasks.
func (r Report) Failed() int {
	return len(r.Rejected)
}

// String returns a human-readable summary of the report.
func (r Report) String() string {
	return fmt.Sprintf("resolved: %d, rejected: %d", len(r.Resolved), len(r.Rejected))
}
