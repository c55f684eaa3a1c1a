// Package brackets validates bracket sequences — (), [], {} — with a stack
// scan, and can pinpoint the first structural error when validation fails.
package brackets

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by Check.
var (
	// ErrUnexpectedClose marks a closing bracket with no opener on the stack.
	ErrUnexpectedClose = errors.New("brackets: closing bracket without opener")

	// ErrMismatch marks a closing bracket whose opener is of another kind.
	ErrMismatch = errors.New("brackets: mismatched bracket pair")

	// ErrUnclosed marks openers left unclosed at end of input.
	ErrUnclosed = errors.New("brackets: unclosed bracket")
)

// closers maps each closing bracket to its required opener.
var closers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// Valid reports whether every bracket in s is properly matched and nested.
// Runes other than ()[]{} are ignored, so source snippets and config
// fragments can be fed in directly. The empty string is valid.
//
// Complexity: O(n) time, O(n) memory for the open-bracket stack.
func Valid(s string) bool {
	return Check(s) == nil
}

// Check scans s and returns nil when balanced, or the first structural error
// wrapped with the byte offset where it occurred:
//
//   - ErrUnexpectedClose — a closer arrived with nothing open
//   - ErrMismatch        — a closer arrived for a different opener
//   - ErrUnclosed        — input ended with openers still pending
//
// Complexity: O(n) time, O(n) memory.
func Check(s string) error {
	type opening struct {
		r   rune
		pos int
	}
	var stack []opening

	for i, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, opening{r: r, pos: i})
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("%w: %q at position %d", ErrUnexpectedClose, r, i)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.r != closers[r] {
				return fmt.Errorf("%w: %q at position %d closes %q", ErrMismatch, r, i, top.r)
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fmt.Errorf("%w: %q at position %d", ErrUnclosed, top.r, top.pos)
	}

	return nil
}

// Count tallies brackets in s by kind: parentheses, square, and curly.
// Useful as a cheap structural complexity signal for source or config text.
func Count(s string) (round, square, curly int) {
	for _, r := range s {
		switch r {
		case '(', ')':
			round++
		case '[', ']':
			square++
		case '{', '}':
			curly++
		}
	}
	return round, square, curly
}
