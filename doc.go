// Package rmisearch provides the bounded local search layer used by learned
// index structures.
//
// A learned index predicts the approximate position of a key in a sorted
// array; rmisearch corrects that prediction to the exact lower bound (the
// first element not less than the query value) using one of a family of
// interchangeable strategies.
//
// # Quick Start
//
//	s, _ := rmisearch.New[uint64](rmisearch.KindBiasedExponential)
//	pos := s.Search(keys, predicted, value)
//
// Fixed-width integer keys additionally unlock the lane-blocked vector
// strategies:
//
//	s, _ := rmisearch.NewInteger[uint64](rmisearch.KindVectorLinear)
//
// # Choosing a Strategy
//
//   - KindBinary: stable O(log n) regardless of model quality.
//   - KindBiasedExponential: cost proportional to the model's error; the
//     usual default when predictions are mostly good.
//   - KindBranchlessBinary: fixed probe count, predictable latency under
//     adversarial query distributions.
//   - KindVectorLinear: small segments of integer keys on SIMD-capable
//     hardware.
//
// Strategies are pure and allocation-free; any number of goroutines may
// search the same slice concurrently as long as the caller does not mutate
// it mid-call. See package search for the exact contract and preconditions.
package rmisearch
