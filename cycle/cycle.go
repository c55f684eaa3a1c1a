package cycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for sequence validation.
var (
	// ErrSequenceLength is returned when the sequence has fewer than two elements.
	ErrSequenceLength = errors.New("cycle: sequence must contain at least two elements")

	// ErrValueOutOfRange is returned when an element falls outside [1, len-1].
	ErrValueOutOfRange = errors.New("cycle: sequence value out of range [1, n]")
)

// FindDuplicate returns a value that appears more than once in nums.
//
// nums must hold n+1 integers, each in [1, n]; the pigeonhole principle then
// guarantees at least one repeated value. Viewing the sequence as a
// functional graph where index i points to index nums[i], a repeated value
// forces a cycle, and the cycle's entry node is that value. Floyd's
// two-cursor walk finds the meeting point, then a second lockstep walk from
// the start locates the entry.
//
// If several distinct values repeat, the one returned is determined by the
// tail structure of the graph, not by position or magnitude.
//
// Unlike the textbook formulation, bounds are checked up front: a sequence
// shorter than two elements yields ErrSequenceLength, and any element outside
// [1, len(nums)-1] yields ErrValueOutOfRange. The input is never mutated.
//
// Complexity: O(n) time, O(1) extra memory.
func FindDuplicate(nums []int) (int, error) {
	n := len(nums) - 1
	if n < 1 {
		return 0, ErrSequenceLength
	}
	for i, v := range nums {
		if v < 1 || v > n {
			return 0, fmt.Errorf("%w: nums[%d] = %d, want 1..%d", ErrValueOutOfRange, i, v, n)
		}
	}

	// Phase 1: advance cursors at speeds 1x and 2x until they collide
	// somewhere inside the cycle.
	slow, fast := nums[0], nums[0]
	for {
		slow = nums[slow]
		fast = nums[nums[fast]]
		if slow == fast {
			break
		}
	}

	// Phase 2: restart one cursor; lockstep advance meets at the cycle entry,
	// which is the duplicated value.
	slow = nums[0]
	for slow != fast {
		slow = nums[slow]
		fast = nums[fast]
	}

	return slow, nil
}
