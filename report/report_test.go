package report_test

import (
	"testing"

	"github.com/katalvlaran/algokit/cycle"
	"github.com/katalvlaran/algokit/intervals"
	"github.com/katalvlaran/algokit/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDedup verifies the metrics for a twice-occurring customer ID.
func TestDedup(t *testing.T) {
	rep, err := report.Dedup([]int{1, 3, 4, 2, 5, 2})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.DuplicateID)
	assert.Equal(t, 6, rep.TotalRecords)
	assert.Equal(t, 2, rep.Occurrences)
	assert.InDelta(t, 1.0, rep.StorageSavedKB, 1e-9)
	assert.InDelta(t, 100.0/6.0, rep.SavingsPercent, 1e-9)
	assert.InDelta(t, 500.0/6.0, rep.QualityScore, 1e-9)
}

// TestDedup_PropagatesError surfaces the finder's sentinel unchanged.
func TestDedup_PropagatesError(t *testing.T) {
	_, err := report.Dedup([]int{0, 1, 1})
	assert.ErrorIs(t, err, cycle.ErrValueOutOfRange)
}

// TestSchedule verifies conflict and utilization accounting.
func TestSchedule(t *testing.T) {
	meetings := []intervals.Interval{
		{Start: 9, End: 11},
		{Start: 10, End: 12},
		{Start: 14, End: 16},
	}

	rep, err := report.Schedule(meetings)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Requested)
	assert.Equal(t, 2, rep.Booked)
	assert.Equal(t, 1, rep.ConflictsResolved)
	assert.Equal(t, 6, rep.RequestedHours)
	assert.Equal(t, 5, rep.BookedHours)
	assert.InDelta(t, 100.0/6.0, rep.UtilizationGain, 1e-9)
	assert.Equal(t, []intervals.Interval{{Start: 12, End: 14}}, rep.FreeSlots)
}

// TestSchedule_Empty yields an all-zero report rather than an error.
func TestSchedule_Empty(t *testing.T) {
	rep, err := report.Schedule(nil)
	require.NoError(t, err)
	assert.Zero(t, rep.Requested)
	assert.Zero(t, rep.UtilizationGain)
}

// TestSessions verifies stream efficiency and diversity.
func TestSessions(t *testing.T) {
	rep := report.Sessions("abcabcbb")

	assert.Equal(t, 3, rep.OptimalLength)
	assert.Equal(t, 8, rep.TotalActivities)
	assert.Equal(t, 3, rep.UniqueKinds)
	assert.InDelta(t, 37.5, rep.Efficiency, 1e-9)
	assert.InDelta(t, 0.375, rep.Diversity, 1e-9)

	assert.Zero(t, report.Sessions("").Efficiency, "empty stream divides nothing")
}

// TestBrackets covers the valid and diagnosed branches.
func TestBrackets(t *testing.T) {
	ok := report.Brackets(`{"a": [1, 2]}`)
	assert.True(t, ok.Valid)
	assert.Equal(t, 0, ok.Round)
	assert.Equal(t, 2, ok.Square)
	assert.Equal(t, 2, ok.Curly)
	assert.Equal(t, 4, ok.Complexity)
	assert.Empty(t, ok.Diagnosis)

	bad := report.Brackets("([)]")
	assert.False(t, bad.Valid)
	assert.Contains(t, bad.Diagnosis, "position 2")
}
