package testutil

import (
	"cmp"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// SortedKeys generates n ascending uint64 keys with random gaps in
// [0, maxGap] between neighbors. A zero gap produces duplicates, which the
// lower-bound contract must resolve to the leftmost occurrence.
func (r *RNG) SortedKeys(n int, maxGap uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, n)
	var cur uint64
	for i := range keys {
		cur += r.rand.Uint64() % (maxGap + 1)
		keys[i] = cur
	}
	return keys
}

// Predict simulates a learned model's position estimate: the true position
// disturbed by a uniform error in [-maxErr, maxErr], clamped to [0, n-1].
func (r *RNG) Predict(truth, n, maxErr int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pred := truth + r.rand.Intn(2*maxErr+1) - maxErr
	if pred < 0 {
		pred = 0
	}
	if pred > n-1 {
		pred = n - 1
	}
	return pred
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// ReferenceLowerBound is the ground-truth oracle: an exhaustive scan
// returning the first index whose element is not less than value, or
// len(data) if none.
func ReferenceLowerBound[K cmp.Ordered](data []K, value K) int {
	for i := range data {
		if data[i] >= value {
			return i
		}
	}
	return len(data)
}
