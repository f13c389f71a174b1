package taskrun

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateAllSuccess(t *testing.T) {
	slots := []*Handle{
		settled(1, nil),
		settled("two", nil),
	}
	rep := aggregate(slots)

	assert.Equal(t, []any{1, "two"}, rep.Resolved)
	assert.Nil(t, rep.Rejected)
	assert.True(t, rep.Ok())
	assert.Equal(t, 2, rep.Succeeded())
	assert.Equal(t, 0, rep.Failed())
}

func TestAggregateAllFailures(t *testing.T) {
	slots := []*Handle{
		settled(nil, errors.New("first broken")),
		settled(nil, errors.New("second broken")),
	}
	rep := aggregate(slots)

	assert.Nil(t, rep.Resolved)
	assert.Equal(t, []string{"first broken", "second broken"}, rep.Rejected)
	assert.False(t, rep.Ok())
}

func TestAggregateMixedKeepsIndexOrder(t *testing.T) {
	slots := []*Handle{
		settled("a", nil),
		settled(nil, errors.New("b broken")),
		settled("c", nil),
		settled(nil, errors.New("d broken")),
	}
	rep := aggregate(slots)

	require.Equal(t, []any{"a", "c"}, rep.Resolved)
	require.Equal(t, []string{"b broken", "d broken"}, rep.Rejected)
	assert.Equal(t, 2, rep.Succeeded())
	assert.Equal(t, 2, rep.Failed())
}

func TestAggregateSkipsNilSlots(t *testing.T) {
	// Nil slots are tasks never launched because the run was stopped;
	// they belong in neither partition.
	slots := []*Handle{
		settled("started", nil),
		nil,
		nil,
	}
	rep := aggregate(slots)

	assert.Equal(t, []any{"started"}, rep.Resolved)
	assert.Nil(t, rep.Rejected)
}

func TestAggregateEmpty(t *testing.T) {
	rep := aggregate(nil)
	assert.Equal(t, Report{}, rep)
	assert.True(t, rep.Ok())
}

func TestAggregateWaitsForUnsettledSlots(t *testing.T) {
	release := make(chan struct{})
	h := Go(func() (any, error) {
		<-release
		return "late", nil
	})
	go close(release)

	rep := aggregate([]*Handle{h})
	require.Equal(t, []any{"late"}, rep.Resolved)
}

func TestReportString(t *testing.T) {
	rep := Report{Resolved: []any{1}, Rejected: []string{"x", "y"}}
	assert.Equal(t, "resolved: 1, rejected: 2", rep.String())
}
