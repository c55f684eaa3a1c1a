// Package cycle detects cycles in implicit pointer structures using the
// fast/slow (Floyd) two-cursor technique, without auxiliary storage.
//
// 🚀 What is cycle?
//
//	Two classic problems share one trick — advance a slow cursor one step and
//	a fast cursor two steps, and any cycle forces them to meet:
//	  • FindDuplicate — treat a sequence of n+1 values in [1,n] as a
//	    functional graph (index i points to index nums[i]); the duplicated
//	    value is exactly the entry node of the cycle that graph must contain.
//	  • HasArrayLoop  — decide whether a circular array of step offsets
//	    contains a single-direction cycle of length greater than one.
//
// ✨ Key properties:
//   - O(n) time, O(1) extra space for duplicate finding
//   - inputs are never mutated (HasArrayLoop works on an internal copy)
//   - malformed sequences are rejected with sentinel errors instead of
//     undefined pointer chasing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/cycle"
//
//	dup, err := cycle.FindDuplicate([]int{1, 3, 4, 2, 2})
//	if err != nil {
//	  // handle ErrSequenceLength or ErrValueOutOfRange
//	}
//	fmt.Println("duplicate:", dup) // 2
//
// Complexity:
//
//   - FindDuplicate: Time O(n), Memory O(1)
//   - HasArrayLoop:  Time O(n), Memory O(n) (defensive copy)
package cycle
