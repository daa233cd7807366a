// Package simd provides vectorization-friendly scan kernels for sorted
// integer keys.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects between the lane-blocked kernel and
// the scalar fallback. Set RMISEARCH_SIMD to pin a specific ISA
// (generic|neon|sve2|avx2|avx512) for debugging or benchmarking.
//
// # Kernels
//
//   - ScanGE: first index whose element is not less than a query value
//
// The blocked kernel compares a fixed block of lanes per iteration, collects
// the comparison results into a bitmask and bit-scans the first set lane.
// Partial final blocks are finished by the scalar tail, so the kernel never
// reads past the end of the slice.
package simd
