package search

import "github.com/hupe1980/rmisearch/internal/simd"

// VectorLinear is a linear scan over fixed-width integer keys that compares
// a block of lanes per step and bit-scans the first qualifying lane, backed
// by the capability layer in internal/simd. When no vector ISA is available
// (or RMISEARCH_SIMD=generic) it degrades to the scalar loop. The prediction
// is ignored.
type VectorLinear[K Integer] struct{}

func (VectorLinear[K]) Search(data []K, _ int, value K) int {
	return simd.ScanGE(data, value)
}

// BiasedVectorLinear picks the half-range at the predicted position like
// BiasedLinear, then sweeps it with the lane-blocked scan. Both halves are
// swept forward: the left half ends at pred, whose element is already known
// to be at or beyond the value.
type BiasedVectorLinear[K Integer] struct{}

func (BiasedVectorLinear[K]) Search(data []K, pred int, value K) int {
	if data[pred] < value {
		return pred + simd.ScanGE(data[pred:], value)
	}
	return simd.ScanGE(data[:pred], value)
}
