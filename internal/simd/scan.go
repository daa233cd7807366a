package simd

import "math/bits"

// Integer constrains keys to fixed-width integer types, the widths the
// vector compare lanes support.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// blockLanes is the number of elements compared per blocked iteration.
// Eight 64-bit lanes matches one AVX-512 register; narrower ISAs issue
// the same block as multiple vector compares.
const blockLanes = 8

// Lanes returns the number of elements the active kernel examines per step:
// blockLanes when a vector ISA is active, 1 for the scalar fallback.
func Lanes() int {
	if useBlocked {
		return blockLanes
	}
	return 1
}

// ScanGE returns the first index i with s[i] >= v, or len(s) if no such
// element exists. The slice must be sorted ascending for the result to be a
// lower bound, but the scan itself never reads out of range regardless.
func ScanGE[K Integer](s []K, v K) int {
	if useBlocked {
		return scanGEBlocked(s, v)
	}
	return scanGEScalar(s, v)
}

// scanGEScalar is the generic fallback.
func scanGEScalar[K Integer](s []K, v K) int {
	for i := range s {
		if s[i] >= v {
			return i
		}
	}
	return len(s)
}

// scanGEBlocked compares blockLanes elements per iteration and collects the
// per-lane results into a bitmask, mirroring a vector compare + mask
// bit-scan. The straight-line block body is auto-vectorization friendly and
// keeps a single well-predicted branch per block.
func scanGEBlocked[K Integer](s []K, v K) int {
	n := len(s)
	i := 0

	for ; i+blockLanes <= n; i += blockLanes {
		b := s[i : i+blockLanes : i+blockLanes]

		var mask uint8
		if b[0] >= v {
			mask |= 1 << 0
		}
		if b[1] >= v {
			mask |= 1 << 1
		}
		if b[2] >= v {
			mask |= 1 << 2
		}
		if b[3] >= v {
			mask |= 1 << 3
		}
		if b[4] >= v {
			mask |= 1 << 4
		}
		if b[5] >= v {
			mask |= 1 << 5
		}
		if b[6] >= v {
			mask |= 1 << 6
		}
		if b[7] >= v {
			mask |= 1 << 7
		}

		if mask != 0 {
			return i + bits.TrailingZeros8(mask)
		}
	}

	// Residual tail, fewer than blockLanes elements.
	for ; i < n; i++ {
		if s[i] >= v {
			return i
		}
	}
	return n
}
