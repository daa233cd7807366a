package search

import "cmp"

// Binary performs a lower-bound binary search over the whole slice and
// ignores the prediction. O(log n) with cost independent of the model's
// error distribution.
type Binary[K cmp.Ordered] struct{}

func (Binary[K]) Search(data []K, _ int, value K) int {
	return lowerBound(data, 0, len(data), value)
}

// BiasedBinary confines the binary search to the half-range selected by the
// element at the predicted position. Worst case stays O(log n); a good
// prediction shrinks the searched sub-range.
type BiasedBinary[K cmp.Ordered] struct{}

func (BiasedBinary[K]) Search(data []K, pred int, value K) int {
	if data[pred] < value {
		// data[pred] is below the value, so the bound is right of it.
		return lowerBound(data, pred+1, len(data), value)
	}
	return lowerBound(data, 0, pred, value)
}
