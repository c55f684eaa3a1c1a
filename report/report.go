package report

import (
	"strings"

	"github.com/katalvlaran/algokit/brackets"
	"github.com/katalvlaran/algokit/cycle"
	"github.com/katalvlaran/algokit/intervals"
	"github.com/katalvlaran/algokit/window"
)

// recordKB and storageUSDPerGBMonth size the storage estimate in DedupReport:
// one record ≈ 1 KB, priced at cold-tier object storage rates.
const (
	recordKB             = 1.0
	storageUSDPerGBMonth = 0.023
)

// DedupReport summarizes the impact of removing a duplicated record ID.
type DedupReport struct {
	DuplicateID       int
	TotalRecords      int
	Occurrences       int
	StorageSavedKB    float64
	SavingsPercent    float64
	MonthlySavingsUSD float64
	QualityScore      float64
}

// Dedup locates the duplicated ID in records via cycle.FindDuplicate and
// estimates the storage and quality effect of keeping a single copy.
// The error, if any, comes straight from the duplicate finder.
func Dedup(records []int) (DedupReport, error) {
	dup, err := cycle.FindDuplicate(records)
	if err != nil {
		return DedupReport{}, err
	}

	total := len(records)
	occurrences := 0
	for _, id := range records {
		if id == dup {
			occurrences++
		}
	}
	redundant := occurrences - 1
	savedKB := float64(redundant) * recordKB

	return DedupReport{
		DuplicateID:       dup,
		TotalRecords:      total,
		Occurrences:       occurrences,
		StorageSavedKB:    savedKB,
		SavingsPercent:    float64(redundant) / float64(total) * 100,
		MonthlySavingsUSD: savedKB / (1024 * 1024) * storageUSDPerGBMonth,
		QualityScore:      float64(total-redundant) / float64(total) * 100,
	}, nil
}

// ScheduleReport summarizes what merging overlapping bookings achieved.
type ScheduleReport struct {
	Requested         int
	Booked            int
	ConflictsResolved int
	RequestedHours    int
	BookedHours       int
	UtilizationGain   float64
	FreeSlots         []intervals.Interval
}

// Schedule merges meetings and reports how many conflicts collapsed and how
// much booked time was reclaimed. The error, if any, comes from
// intervals.Merge.
func Schedule(meetings []intervals.Interval) (ScheduleReport, error) {
	merged, err := intervals.Merge(meetings)
	if err != nil {
		return ScheduleReport{}, err
	}

	requestedHours := 0
	for _, m := range meetings {
		requestedHours += m.Len()
	}
	bookedHours := 0
	for _, m := range merged {
		bookedHours += m.Len()
	}

	gain := 0.0
	if requestedHours > 0 {
		gain = float64(requestedHours-bookedHours) / float64(requestedHours) * 100
	}

	return ScheduleReport{
		Requested:         len(meetings),
		Booked:            len(merged),
		ConflictsResolved: len(meetings) - len(merged),
		RequestedHours:    requestedHours,
		BookedHours:       bookedHours,
		UtilizationGain:   gain,
		FreeSlots:         intervals.Gaps(merged),
	}, nil
}

// SessionReport summarizes repeat-free stretches of an activity stream.
type SessionReport struct {
	OptimalLength   int
	TotalActivities int
	Efficiency      float64
	UniqueKinds     int
	Diversity       float64
}

// Sessions measures the longest repeat-free activity run in activity and
// relates it to the stream's overall length and variety.
func Sessions(activity string) SessionReport {
	runes := []rune(activity)
	total := len(runes)

	kinds := make(map[rune]struct{}, total)
	for _, r := range runes {
		kinds[r] = struct{}{}
	}

	rep := SessionReport{
		OptimalLength:   window.LongestUnique(activity),
		TotalActivities: total,
		UniqueKinds:     len(kinds),
	}
	if total > 0 {
		rep.Efficiency = float64(rep.OptimalLength) / float64(total) * 100
		rep.Diversity = float64(rep.UniqueKinds) / float64(total)
	}

	return rep
}

// BracketsReport summarizes the structural health of a source fragment.
type BracketsReport struct {
	Valid      bool
	Round      int
	Square     int
	Curly      int
	Complexity int
	Diagnosis  string
}

// Brackets validates src and tallies its brackets by kind; when invalid,
// Diagnosis carries the first positioned error message.
func Brackets(src string) BracketsReport {
	rep := BracketsReport{}
	rep.Round, rep.Square, rep.Curly = brackets.Count(src)
	rep.Complexity = rep.Round + rep.Square + rep.Curly

	if err := brackets.Check(src); err != nil {
		rep.Diagnosis = strings.TrimPrefix(err.Error(), "brackets: ")

		return rep
	}
	rep.Valid = true

	return rep
}
