package cycle

// HasArrayLoop reports whether nums, read as a circular array of step
// offsets, contains a cycle of length greater than one whose steps all move
// in the same direction. Index i jumps forward nums[i] positions (backward
// when negative), wrapping around either end.
//
// Self-loops and cycles mixing forward and backward steps do not count.
// Zero elements are treated as dead ends. A slice shorter than two elements
// cannot loop.
//
// The walk marks exhausted paths to stay linear; marking happens on an
// internal copy, so nums itself is never modified.
//
// Complexity: O(n) time, O(n) memory for the defensive copy.
func HasArrayLoop(nums []int) bool {
	if len(nums) < 2 {
		return false
	}
	steps := make([]int, len(nums))
	copy(steps, nums)

	for i := range steps {
		if steps[i] == 0 {
			continue // path already exhausted
		}

		slow, fast := i, i
		for {
			slow = advance(steps, slow)
			fast = advance(steps, fast)
			if fast != -1 {
				fast = advance(steps, fast)
			}
			if slow == -1 || fast == -1 {
				break
			}
			if slow == fast {
				// A meeting point inside a one-node cycle is a self-loop.
				if slow == advance(steps, slow) {
					break
				}
				return true
			}
		}

		markExhausted(steps, i)
	}

	return false
}

// advance returns the next index from current, or -1 when the step there
// reverses direction (mixed-direction paths can never form a valid loop).
func advance(steps []int, current int) int {
	n := len(steps)
	next := ((current+steps[current])%n + n) % n
	if (steps[current] > 0) != (steps[next] > 0) {
		return -1
	}
	return next
}

// markExhausted zeroes the indices walked from start so later outer-loop
// iterations skip paths already known not to yield a loop. Marking halts at
// a direction change: the nodes beyond it were never walked from start and
// may still belong to a valid loop reachable from another entry.
func markExhausted(steps []int, start int) {
	n := len(steps)
	current := start
	for steps[current] != 0 {
		next := ((current+steps[current])%n + n) % n
		sameDirection := (steps[current] > 0) == (steps[next] > 0)
		steps[current] = 0
		if !sameDirection {
			return
		}
		current = next
	}
}
