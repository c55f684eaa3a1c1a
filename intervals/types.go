// Package intervals merges, inserts, and analyzes closed integer intervals,
// the primitive behind booking calendars and time-slot planners.
package intervals

import (
	"errors"
	"fmt"
)

// Sentinel errors for interval validation.
var (
	// ErrInvalidInterval is returned when an interval has Start > End.
	ErrInvalidInterval = errors.New("intervals: interval start must not exceed end")

	// ErrUnsorted is returned by Insert when the base list is not sorted
	// ascending by Start with no overlaps.
	ErrUnsorted = errors.New("intervals: base list must be sorted and non-overlapping")
)

// Interval is a closed range [Start, End]. Two intervals touch when one
// starts exactly where the other ends; touching intervals coalesce.
type Interval struct {
	Start int
	End   int
}

// Len returns the interval's width, End - Start.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// String renders the interval as [start,end].
func (iv Interval) String() string { return fmt.Sprintf("[%d,%d]", iv.Start, iv.End) }

// validate checks every interval for well-formedness, reporting the first
// offender by position.
func validate(ivs []Interval) error {
	for i, iv := range ivs {
		if iv.Start > iv.End {
			return fmt.Errorf("%w: %v at index %d", ErrInvalidInterval, iv, i)
		}
	}
	return nil
}
