// Package search implements the bounded local search strategies used to
// correct the position predicted by a learned index model.
//
// A learned index predicts roughly where a key lives inside a sorted array;
// a strategy from this package then locates the exact lower bound, the first
// element that is not less than the query value. All strategies satisfy the
// same contract and are interchangeable:
//
//	var s search.Searcher[uint64] = search.BiasedExponential[uint64]{}
//	pos := s.Search(keys, predicted, value)
//
// # Strategies
//
//   - Linear, Binary, Exponential: ignore the prediction and search the
//     whole slice.
//   - BiasedLinear, BiasedBinary, BiasedExponential: use the predicted
//     position to pick a direction and shrink the searched range. A bad
//     prediction costs time, never correctness.
//   - BranchlessBinary, BiasedBranchlessBinary: power-of-two step descent
//     with conditional-move updates for predictable latency under
//     unpredictable query distributions.
//   - VectorLinear, BiasedVectorLinear: lane-blocked scan for fixed-width
//     integer keys, backed by the capability layer in internal/simd with a
//     scalar fallback.
//
// # Contract
//
// Strategies are pure, allocation-free and safe for concurrent use. The
// slice must be sorted ascending and must not be mutated during a call.
// The predicted position must lie in [0, len(data)) for the biased scalar
// strategies and in [0, len(data)] for the branchless ones; violating these
// preconditions or passing an empty slice to a strategy that dereferences it
// unconditionally is undefined behavior, not a reported error.
package search
