// Package algokit is a toolbox of classic sequence, string, and interval
// algorithms — the patterns behind everyday data plumbing, each in its own
// small, self-contained package.
//
// 🚀 What is algokit?
//
//	A collection of independent algorithm families, one package each:
//		• cycle      — fast/slow pointer cycle detection: duplicate finding, array loops
//		• pairsum    — hash-map TwoSum & two-pointer ThreeSum
//		• palindrome — half-reversal numeric & two-pointer text checks
//		• roman      — Roman numeral parsing and validation
//		• prefix     — longest common prefix (vertical scan & binary search)
//		• brackets   — stack-based bracket matching with positioned diagnostics
//		• intervals  — merge, insert, and gap analysis over [start,end] pairs
//		• window     — sliding-window substring lengths
//		• chain      — singly linked list two-pointer operations
//
// ✨ Why choose algokit?
//
//   - Pure functions – no shared state, no input mutation, no goroutines
//   - Explicit contracts – preconditions are validated and surfaced as
//     sentinel errors you can match with errors.Is
//   - Pure Go – no cgo, no hidden deps in the algorithm packages
//   - Documented complexity – every routine states its time & space bounds
//
// An optional reporting layer (report/) turns algorithm results into
// operational summaries, and cmd/algokit wraps the whole set in a small demo
// CLI. Neither is required to use the algorithm packages.
//
//	go get github.com/katalvlaran/algokit
package algokit
