package search

import (
	"cmp"
	"math/bits"
)

// noCandidate marks "no index known to hold an element below the value yet"
// during the branchless descent.
const noCandidate = -1

// branchlessLowerBound locates the lower bound of value in data[base:base+n]
// and returns an absolute index in [base, base+n].
//
// It descends through power-of-two steps starting at the highest set bit of
// n, unconditionally probing pos+step each round and advancing pos only while
// the probed element is still below the value. The update compiles to a
// conditional move, so the loop runs a fixed bits.Len(n) rounds with no
// data-dependent branching. Probes are clamped to the last valid index, which
// keeps the descent exact for lengths that are not powers of two: a clamped
// probe only ever replaces a move past the end, and the greedy bit descent
// still reaches every answer in [0, n].
func branchlessLowerBound[K cmp.Ordered](data []K, base, n int, value K) int {
	if n <= 0 {
		return base
	}
	pos := noCandidate
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		probe := min(pos+step, n-1)
		if data[base+probe] < value {
			pos = probe
		}
	}
	return base + pos + 1
}

// BranchlessBinary is a binary search with no conditional branches in the
// inner loop, trading a fixed number of probes for latency that does not
// depend on the query distribution. The prediction is ignored.
type BranchlessBinary[K cmp.Ordered] struct{}

func (BranchlessBinary[K]) Search(data []K, _ int, value K) int {
	return branchlessLowerBound(data, 0, len(data), value)
}

// BiasedBranchlessBinary runs the branchless descent over the half-range
// selected by the element at the predicted position. Unlike the scalar
// biased strategies, pred == len(data) is accepted and selects the full
// slice as the left half.
type BiasedBranchlessBinary[K cmp.Ordered] struct{}

func (BiasedBranchlessBinary[K]) Search(data []K, pred int, value K) int {
	n := len(data)
	if pred < n && data[pred] < value {
		return branchlessLowerBound(data, pred, n-pred, value)
	}
	return branchlessLowerBound(data, 0, pred, value)
}
