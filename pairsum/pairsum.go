package pairsum

import "sort"

// TwoSum returns the indices of two distinct elements of nums that add up to
// target, and ok=true when such a pair exists. When several pairs qualify,
// the one completed earliest in a left-to-right scan wins; its indices are
// ordered first-seen, then current.
//
// The scan keeps a value→index map of elements seen so far and looks up each
// element's complement, so a single pass suffices.
//
// Complexity: O(n) time, O(n) memory.
func TwoSum(nums []int, target int) (pair [2]int, ok bool) {
	seen := make(map[int]int, len(nums))
	for i, v := range nums {
		if j, hit := seen[target-v]; hit {
			return [2]int{j, i}, true
		}
		seen[v] = i
	}
	return [2]int{}, false
}

// ThreeSum returns every unique triplet of values in nums that sums to zero,
// each triplet in ascending order, triplets ordered lexicographically.
//
// The classic scheme: sort a working copy, fix the smallest element, then
// close in with two pointers, skipping equal neighbors to avoid duplicate
// triplets. nums itself is left untouched.
//
// Complexity: O(n²) time, O(n) memory for the sorted copy.
func ThreeSum(nums []int) [][3]int {
	if len(nums) < 3 {
		return nil
	}
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)

	var triplets [][3]int
	for i := 0; i < len(sorted)-2; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue // same anchor as before, already covered
		}
		left, right := i+1, len(sorted)-1
		for left < right {
			sum := sorted[i] + sorted[left] + sorted[right]
			switch {
			case sum == 0:
				triplets = append(triplets, [3]int{sorted[i], sorted[left], sorted[right]})
				for left < right && sorted[left] == sorted[left+1] {
					left++
				}
				for left < right && sorted[right] == sorted[right-1] {
					right--
				}
				left++
				right--
			case sum < 0:
				left++
			default:
				right--
			}
		}
	}

	return triplets
}
