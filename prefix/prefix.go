// Package prefix extracts the longest common prefix of a string set, the
// core of route collapsing and path-table compression.
package prefix

// Common returns the longest prefix shared by every string in strs.
// An empty slice yields ""; a single string is its own prefix.
//
// Vertical scan: column by column, compare the candidate byte across all
// strings and stop at the first disagreement or at the end of the shortest
// string. Comparing bytes is sound here because any disagreement inside a
// multi-byte rune shows up at its first differing byte.
//
// Complexity: O(S) time where S is the total length of all strings,
// O(1) memory.
func Common(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	limit := len(strs[0])
	for _, s := range strs[1:] {
		if len(s) < limit {
			limit = len(s)
		}
	}

	for col := 0; col < limit; col++ {
		c := strs[0][col]
		for _, s := range strs[1:] {
			if s[col] != c {
				return strs[0][:col]
			}
		}
	}

	return strs[0][:limit]
}

// CommonBinarySearch returns the same prefix as Common but narrows the
// prefix length by bisection, probing whether a given length is shared by
// all strings. Preferable when strings are long and the common prefix is
// short relative to them.
//
// Complexity: O(S·log m) time where m is the shortest string length,
// O(1) memory.
func CommonBinarySearch(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	limit := len(strs[0])
	for _, s := range strs[1:] {
		if len(s) < limit {
			limit = len(s)
		}
	}

	low, high := 0, limit
	for low < high {
		mid := (low + high + 1) / 2
		if sharedPrefix(strs, mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}

	return strs[0][:low]
}

// sharedPrefix reports whether the first length bytes of strs[0] open every
// string in strs.
func sharedPrefix(strs []string, length int) bool {
	p := strs[0][:length]
	for _, s := range strs[1:] {
		if len(s) < length || s[:length] != p {
			return false
		}
	}
	return true
}
