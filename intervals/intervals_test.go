package intervals_test

import (
	"testing"

	"github.com/katalvlaran/algokit/intervals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end int) intervals.Interval {
	return intervals.Interval{Start: start, End: end}
}

// TestMerge covers overlap, touch, containment, and unordered input.
func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		in   []intervals.Interval
		want []intervals.Interval
	}{
		{
			"classic",
			[]intervals.Interval{iv(1, 3), iv(2, 6), iv(8, 10), iv(15, 18)},
			[]intervals.Interval{iv(1, 6), iv(8, 10), iv(15, 18)},
		},
		{
			"touching",
			[]intervals.Interval{iv(1, 4), iv(4, 5)},
			[]intervals.Interval{iv(1, 5)},
		},
		{
			"contained",
			[]intervals.Interval{iv(1, 10), iv(2, 3), iv(4, 8)},
			[]intervals.Interval{iv(1, 10)},
		},
		{
			"unordered input",
			[]intervals.Interval{iv(8, 10), iv(1, 3), iv(2, 6)},
			[]intervals.Interval{iv(1, 6), iv(8, 10)},
		},
		{"single", []intervals.Interval{iv(5, 7)}, []intervals.Interval{iv(5, 7)}},
		{"empty", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := intervals.Merge(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMerge_Invalid rejects reversed intervals.
func TestMerge_Invalid(t *testing.T) {
	_, err := intervals.Merge([]intervals.Interval{iv(5, 2)})
	assert.ErrorIs(t, err, intervals.ErrInvalidInterval)
}

// TestMerge_NoMutation ensures the caller's slice keeps its order.
func TestMerge_NoMutation(t *testing.T) {
	in := []intervals.Interval{iv(8, 10), iv(1, 3), iv(2, 6)}
	snapshot := append([]intervals.Interval(nil), in...)

	_, err := intervals.Merge(in)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in, "input must not be reordered")
}

// TestInsert covers the three-phase linear insertion.
func TestInsert(t *testing.T) {
	cases := []struct {
		name string
		in   []intervals.Interval
		nv   intervals.Interval
		want []intervals.Interval
	}{
		{
			"middle overlap",
			[]intervals.Interval{iv(1, 3), iv(6, 9)},
			iv(2, 5),
			[]intervals.Interval{iv(1, 5), iv(6, 9)},
		},
		{
			"bridges many",
			[]intervals.Interval{iv(1, 2), iv(3, 5), iv(6, 7), iv(8, 10), iv(12, 16)},
			iv(4, 8),
			[]intervals.Interval{iv(1, 2), iv(3, 10), iv(12, 16)},
		},
		{"into empty", nil, iv(5, 7), []intervals.Interval{iv(5, 7)}},
		{
			"before all",
			[]intervals.Interval{iv(5, 7)},
			iv(1, 2),
			[]intervals.Interval{iv(1, 2), iv(5, 7)},
		},
		{
			"after all",
			[]intervals.Interval{iv(1, 2)},
			iv(5, 7),
			[]intervals.Interval{iv(1, 2), iv(5, 7)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := intervals.Insert(tc.in, tc.nv)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestInsert_Errors rejects malformed and unsorted bases.
func TestInsert_Errors(t *testing.T) {
	_, err := intervals.Insert(nil, iv(7, 3))
	assert.ErrorIs(t, err, intervals.ErrInvalidInterval)

	_, err = intervals.Insert([]intervals.Interval{iv(5, 9), iv(1, 2)}, iv(0, 1))
	assert.ErrorIs(t, err, intervals.ErrUnsorted)

	_, err = intervals.Insert([]intervals.Interval{iv(1, 5), iv(4, 9)}, iv(0, 0))
	assert.ErrorIs(t, err, intervals.ErrUnsorted, "overlapping base list")
}

// TestInsert_NoMutation ensures nv absorption never writes into ivs.
func TestInsert_NoMutation(t *testing.T) {
	in := []intervals.Interval{iv(1, 3), iv(6, 9)}
	snapshot := append([]intervals.Interval(nil), in...)

	_, err := intervals.Insert(in, iv(2, 7))
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

// TestGaps extracts free slots between merged intervals.
func TestGaps(t *testing.T) {
	gaps := intervals.Gaps([]intervals.Interval{iv(1, 3), iv(5, 8), iv(8, 9), iv(12, 14)})
	assert.Equal(t, []intervals.Interval{iv(3, 5), iv(9, 12)}, gaps)

	assert.Nil(t, intervals.Gaps([]intervals.Interval{iv(1, 3)}))
	assert.Nil(t, intervals.Gaps(nil))
}

// TestGaps_RequiresSortedInput documents the precondition: out-of-order
// pairs contribute no gap, so callers must pass Merge/Insert output.
func TestGaps_RequiresSortedInput(t *testing.T) {
	unsorted := []intervals.Interval{iv(5, 8), iv(1, 3)}
	assert.Nil(t, intervals.Gaps(unsorted), "unsorted input yields no gaps, not an error")

	merged, err := intervals.Merge(unsorted)
	require.NoError(t, err)
	assert.Equal(t, []intervals.Interval{iv(3, 5)}, intervals.Gaps(merged))
}

// TestInterval_Helpers covers Len, Overlaps, and String.
func TestInterval_Helpers(t *testing.T) {
	assert.Equal(t, 4, iv(2, 6).Len())
	assert.True(t, iv(1, 4).Overlaps(iv(4, 6)), "touching counts as overlap")
	assert.False(t, iv(1, 3).Overlaps(iv(4, 6)))
	assert.Equal(t, "[2,6]", iv(2, 6).String())
}
