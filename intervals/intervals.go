package intervals

import "sort"

// Merge coalesces overlapping or touching intervals into the minimal sorted
// set covering the same points. The input may arrive in any order and is
// never reordered or modified; sorting happens on a working copy.
//
// Returns ErrInvalidInterval if any interval has Start > End.
//
// Complexity: O(n log n) time for the sort, O(n) memory.
func Merge(ivs []Interval) ([]Interval, error) {
	if err := validate(ivs); err != nil {
		return nil, err
	}
	if len(ivs) == 0 {
		return nil, nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Interval, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
		} else {
			merged = append(merged, cur)
		}
	}

	return merged, nil
}

// Insert places nv into a sorted, non-overlapping list and coalesces any
// intervals it overlaps or touches, in one linear pass:
//
//  1. copy intervals ending before nv starts
//  2. absorb every interval overlapping nv into nv
//  3. copy the remainder
//
// ivs is never modified. Returns ErrInvalidInterval for malformed intervals
// and ErrUnsorted when ivs violates its ordering contract.
//
// Complexity: O(n) time, O(n) memory.
func Insert(ivs []Interval, nv Interval) ([]Interval, error) {
	if nv.Start > nv.End {
		return nil, ErrInvalidInterval
	}
	if err := validate(ivs); err != nil {
		return nil, err
	}
	for i := 1; i < len(ivs); i++ {
		if ivs[i].Start <= ivs[i-1].End {
			return nil, ErrUnsorted
		}
	}

	result := make([]Interval, 0, len(ivs)+1)
	i := 0

	for i < len(ivs) && ivs[i].End < nv.Start {
		result = append(result, ivs[i])
		i++
	}

	for i < len(ivs) && ivs[i].Start <= nv.End {
		if ivs[i].Start < nv.Start {
			nv.Start = ivs[i].Start
		}
		if ivs[i].End > nv.End {
			nv.End = ivs[i].End
		}
		i++
	}
	result = append(result, nv)

	result = append(result, ivs[i:]...)

	return result, nil
}

// Gaps returns the free intervals between consecutive entries of a sorted,
// non-overlapping list — the complement within the list's own span. Lists
// with fewer than two intervals have no gaps.
//
// ivs must be sorted ascending by Start with no overlaps, i.e. the shape
// Merge and Insert produce; feed their output in directly. Adjacent pairs
// violating that order contribute no gap, so an unsorted list yields an
// incomplete answer rather than an error.
func Gaps(ivs []Interval) []Interval {
	var gaps []Interval
	for i := 1; i < len(ivs); i++ {
		if ivs[i].Start > ivs[i-1].End {
			gaps = append(gaps, Interval{Start: ivs[i-1].End, End: ivs[i].Start})
		}
	}
	return gaps
}
