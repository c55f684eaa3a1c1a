// Package palindrome checks whether values read the same forwards and
// backwards: integers via half reversal, text via a two-pointer scan over
// alphanumeric runes only.
package palindrome

import "unicode"

// Number reports whether x is a palindrome in base 10.
//
// Negative numbers are never palindromes (the sign has no mirror), and
// neither is a positive multiple of ten (its mirror would need a leading
// zero). Only the lower half of the digits is reversed, so the loop runs
// half the digit count and needs no string conversion.
//
// Complexity: O(log₁₀ x) time, O(1) memory.
func Number(x int) bool {
	if x < 0 || (x > 0 && x%10 == 0) {
		return false
	}

	reversed := 0
	for x > reversed {
		reversed = reversed*10 + x%10
		x /= 10
	}
	// even digit count: halves match exactly;
	// odd digit count: the middle digit sits at reversed's lowest position.
	return x == reversed || x == reversed/10
}

// Text reports whether s is a palindrome after dropping every rune that is
// not a letter or digit and ignoring case. The empty string qualifies.
//
// Complexity: O(n) time, O(1) memory.
func Text(s string) bool {
	runes := []rune(s)
	left, right := 0, len(runes)-1
	for left < right {
		for left < right && !alnum(runes[left]) {
			left++
		}
		for left < right && !alnum(runes[right]) {
			right--
		}
		if unicode.ToLower(runes[left]) != unicode.ToLower(runes[right]) {
			return false
		}
		left++
		right--
	}
	return true
}

func alnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
