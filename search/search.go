package search

import "cmp"

// Searcher locates the lower bound of a value in a sorted slice.
//
// Search returns the first index whose element is not less than value, or
// len(data) if no such element exists. pred is the position predicted by an
// external model; strategies may use it to reduce work but the result never
// depends on it.
type Searcher[K cmp.Ordered] interface {
	Search(data []K, pred int, value K) int
}

// Integer constrains keys to fixed-width integer types. The vector
// strategies require it; everything else works on any ordered key.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// lowerBound returns the first index in [lo, hi) whose element is not less
// than value, or hi if none. Callers guarantee 0 <= lo <= hi <= len(data).
func lowerBound[K cmp.Ordered](data []K, lo, hi int, value K) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if data[mid] < value {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
