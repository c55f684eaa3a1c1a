// Package window computes longest-run lengths over strings with a sliding
// two-pointer window: longest stretch of distinct runes, and longest stretch
// of one repeated rune achievable within a replacement budget.
package window

import "errors"

// ErrNegativeBudget is returned when a replacement budget is below zero.
var ErrNegativeBudget = errors.New("window: replacement budget must be non-negative")

// LongestUnique returns the length of the longest substring of s without
// repeating runes, measured in runes.
//
// The window keeps a rune→last-index map; when the incoming rune was already
// seen inside the window, the left edge jumps past its previous position.
//
// Complexity: O(n) time, O(min(n, alphabet)) memory.
func LongestUnique(s string) int {
	lastSeen := make(map[rune]int)
	left, longest := 0, 0

	runes := []rune(s)
	for right, r := range runes {
		if prev, ok := lastSeen[r]; ok && prev >= left {
			left = prev + 1
		}
		lastSeen[r] = right
		if width := right - left + 1; width > longest {
			longest = width
		}
	}

	return longest
}

// LongestRepeating returns the length of the longest substring of s that can
// be turned into a single repeated rune by replacing at most k runes.
//
// The window grows on the right; whenever its width minus the count of its
// dominant rune exceeds k, the left edge advances one step. The dominant
// count never shrinks, which keeps the answer monotone and the pass linear.
//
// Returns ErrNegativeBudget when k < 0.
//
// Complexity: O(n) time, O(alphabet) memory.
func LongestRepeating(s string, k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeBudget
	}

	counts := make(map[rune]int)
	left, dominant, longest := 0, 0, 0

	runes := []rune(s)
	for right, r := range runes {
		counts[r]++
		if counts[r] > dominant {
			dominant = counts[r]
		}

		if right-left+1-dominant > k {
			counts[runes[left]]--
			left++
		}

		if width := right - left + 1; width > longest {
			longest = width
		}
	}

	return longest, nil
}
