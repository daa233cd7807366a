package search

import "cmp"

// Linear scans forward from the start of the slice and ignores the
// prediction. O(n), but the tight loop wins on very small ranges where
// branch prediction dominates. Also serves as the reference baseline.
type Linear[K cmp.Ordered] struct{}

func (Linear[K]) Search(data []K, _ int, value K) int {
	for i := range data {
		if data[i] >= value {
			return i
		}
	}
	return len(data)
}

// BiasedLinear starts scanning at the predicted position: rightward when the
// element there is still below the value, leftward otherwise. Expected work
// is proportional to the prediction error.
type BiasedLinear[K cmp.Ordered] struct{}

func (BiasedLinear[K]) Search(data []K, pred int, value K) int {
	if data[pred] < value {
		for i := pred + 1; i < len(data); i++ {
			if data[i] >= value {
				return i
			}
		}
		return len(data)
	}
	for i := pred - 1; i >= 0; i-- {
		if data[i] < value {
			return i + 1
		}
	}
	return 0
}
