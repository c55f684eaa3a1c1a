// Package pairsum finds small fixed-size combinations of elements that hit a
// target sum: TwoSum (hash map, one pass) and ThreeSum (sort + two pointers).
//
// Both functions are pure: inputs are never reordered or modified, and the
// same input always yields the same answer.
//
// Complexity:
//
//   - TwoSum:   Time O(n), Memory O(n)
//   - ThreeSum: Time O(n²), Memory O(n) (sorted working copy)
package pairsum
