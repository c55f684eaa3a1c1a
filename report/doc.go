// Package report turns algorithm results into small operational summaries:
// deduplication savings, schedule utilization, session efficiency, and
// bracket health.
//
// It is a convenience layer over the algorithm packages — plain arithmetic,
// no additional algorithmic content — and nothing in those packages depends
// on it. Callers who only need the raw answers should use the algorithm
// packages directly.
package report
