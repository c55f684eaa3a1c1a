// Package roman converts Roman numerals to integers, with explicit
// validation instead of silent garbage on malformed input.
package roman

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidNumeral is returned for empty input or characters outside the
// Roman alphabet IVXLCDM.
var ErrInvalidNumeral = errors.New("roman: invalid numeral")

// values maps each Roman symbol to its magnitude. Lookup is case-insensitive
// via unicode.ToUpper at the call sites.
var values = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Parse converts a Roman numeral to its integer value.
//
// The scan runs right to left, accumulating symbol values; a symbol smaller
// than its right neighbor is subtracted, which covers the six subtractive
// pairs (IV, IX, XL, XC, CD, CM) without special cases. Input is
// case-insensitive. Empty strings and foreign characters yield
// ErrInvalidNumeral with the offending position.
//
// Complexity: O(n) time, O(1) memory.
func Parse(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidNumeral)
	}

	runes := []rune(s)
	total, prev := 0, 0
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := values[unicode.ToUpper(runes[i])]
		if !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidNumeral, runes[i], i)
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}

	return total, nil
}

// Valid reports whether s is non-empty and made solely of Roman symbols,
// case-insensitively. It does not check canonical form: "IIII" is Valid.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := values[unicode.ToUpper(r)]; !ok {
			return false
		}
	}
	return true
}
