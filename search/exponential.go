package search

import "cmp"

// Exponential gallops from the start of the slice, doubling the step until a
// probe lands at or beyond the value, then finishes with a bounded binary
// search over the last doubling interval. Ideal when the answer sits close
// to the start; otherwise degrades to O(log n) around the eventual position.
type Exponential[K cmp.Ordered] struct{}

func (Exponential[K]) Search(data []K, _ int, value K) int {
	if data[0] >= value {
		return 0
	}
	n := len(data)
	bound := 1
	prev := 0
	curr := 1
	for curr < n && data[curr] < value {
		bound <<= 1
		prev = curr
		curr += bound
	}
	return lowerBound(data, prev, min(curr+1, n), value)
}

// BiasedExponential gallops outward from the predicted position in the
// direction selected by the element there, then binary-searches the final
// bracketing interval. Cost is proportional to the distance between
// prediction and answer, not to the slice length, which makes it the
// strategy of choice for models that are usually close and occasionally
// far off.
type BiasedExponential[K cmp.Ordered] struct{}

func (BiasedExponential[K]) Search(data []K, pred int, value K) int {
	n := len(data)
	if data[pred] < value {
		// Gallop right.
		bound := 1
		prev := pred
		curr := pred + 1
		for curr < n && data[curr] < value {
			bound <<= 1
			prev = curr
			curr += bound
		}
		return lowerBound(data, prev, min(curr+1, n), value)
	}
	// Gallop left.
	bound := 1
	prev := pred
	curr := pred - 1
	for curr > 0 && data[curr] >= value {
		bound <<= 1
		prev = curr
		curr -= bound
	}
	return lowerBound(data, max(curr, 0), prev, value)
}
