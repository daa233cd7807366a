// Package testutil provides testing utilities for rmisearch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating sorted key sets, simulating model
// predictions with bounded error, and computing ground-truth lower bounds.
//
// # Sorted Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.SortedKeys(1000, 8) // ascending, gaps in [0, 8]
//
// # Simulated Predictions
//
//	pred := rng.Predict(truth, len(keys), 16) // truth ± 16, clamped
//
// # Ground Truth
//
//	want := testutil.ReferenceLowerBound(keys, value)
package testutil
