package intervals_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/intervals"
)

// ExampleMerge collapses overlapping room bookings into actual usage blocks.
func ExampleMerge() {
	bookings := []intervals.Interval{
		{Start: 9, End: 11},
		{Start: 10, End: 12},
		{Start: 14, End: 16},
	}

	merged, err := intervals.Merge(bookings)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(merged)
	// Output:
	// [[9,12] [14,16]]
}

// ExampleInsert slots an urgent meeting into an existing schedule.
func ExampleInsert() {
	schedule := []intervals.Interval{
		{Start: 9, End: 10},
		{Start: 13, End: 14},
	}

	updated, err := intervals.Insert(schedule, intervals.Interval{Start: 10, End: 13})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(updated)
	// Output:
	// [[9,14]]
}

// ExampleGaps lists the free slots of a merged schedule.
func ExampleGaps() {
	schedule := []intervals.Interval{
		{Start: 9, End: 11},
		{Start: 13, End: 15},
	}
	fmt.Println(intervals.Gaps(schedule))
	// Output:
	// [[11,13]]
}
