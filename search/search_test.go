package search_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/rmisearch/search"
	"github.com/hupe1980/rmisearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type namedStrategy struct {
	name   string
	s      search.Searcher[uint64]
	biased bool
}

func allStrategies() []namedStrategy {
	return []namedStrategy{
		{"linear", search.Linear[uint64]{}, false},
		{"biased-linear", search.BiasedLinear[uint64]{}, true},
		{"binary", search.Binary[uint64]{}, false},
		{"biased-binary", search.BiasedBinary[uint64]{}, true},
		{"exponential", search.Exponential[uint64]{}, false},
		{"biased-exponential", search.BiasedExponential[uint64]{}, true},
		{"branchless-binary", search.BranchlessBinary[uint64]{}, false},
		{"biased-branchless-binary", search.BiasedBranchlessBinary[uint64]{}, true},
		{"vector-linear", search.VectorLinear[uint64]{}, false},
		{"biased-vector-linear", search.BiasedVectorLinear[uint64]{}, true},
	}
}

func TestLowerBoundEquivalence(t *testing.T) {
	rng := testutil.NewRNG(42)

	sizes := []int{1, 2, 3, 5, 7, 8, 9, 15, 16, 17, 31, 33, 64, 100, 129}
	for _, n := range sizes {
		keys := rng.SortedKeys(n, 3) // small gaps force duplicates

		for trial := 0; trial < 50; trial++ {
			// Cover below-range, in-range, duplicate hits and above-range.
			value := rng.Uint64() % (keys[n-1] + 3)
			pred := rng.Intn(n)
			want := testutil.ReferenceLowerBound(keys, value)

			for _, st := range allStrategies() {
				got := st.s.Search(keys, pred, value)
				require.Equalf(t, want, got,
					"%s: n=%d value=%d pred=%d", st.name, n, value, pred)
			}
		}
	}
}

func TestHintInvariance(t *testing.T) {
	rng := testutil.NewRNG(7)
	keys := rng.SortedKeys(64, 4)

	values := []uint64{0, keys[0], keys[13], keys[13] + 1, keys[40], keys[63], keys[63] + 1}
	for _, value := range values {
		want := testutil.ReferenceLowerBound(keys, value)

		for _, st := range allStrategies() {
			if !st.biased {
				continue
			}
			for pred := 0; pred < len(keys); pred++ {
				got := st.s.Search(keys, pred, value)
				require.Equalf(t, want, got,
					"%s: value=%d pred=%d", st.name, value, pred)
			}
		}
	}

	// The branchless biased form additionally accepts pred == len(data).
	bb := search.BiasedBranchlessBinary[uint64]{}
	for _, value := range values {
		want := testutil.ReferenceLowerBound(keys, value)
		assert.Equal(t, want, bb.Search(keys, len(keys), value), "value=%d", value)
	}
}

func TestConcreteScenario(t *testing.T) {
	keys := []uint64{1, 3, 3, 5, 8, 13, 21}

	tests := []struct {
		value uint64
		want  int
	}{
		{value: 5, want: 3},  // first 5
		{value: 4, want: 3},  // first element >= 4 is 5
		{value: 0, want: 0},  // below every element
		{value: 22, want: 7}, // past the end
		{value: 3, want: 1},  // leftmost duplicate
		{value: 21, want: 6}, // last element
	}

	for _, st := range allStrategies() {
		t.Run(st.name, func(t *testing.T) {
			for _, tt := range tests {
				for pred := range keys {
					got := st.s.Search(keys, pred, tt.value)
					assert.Equalf(t, tt.want, got, "value=%d pred=%d", tt.value, pred)
				}
			}
		})
	}
}

func TestBiasedScenarioLeftward(t *testing.T) {
	// Element at the hint (8) is not less than 3, so the search proceeds
	// leftward and must land on the first 3.
	keys := []uint64{1, 3, 3, 5, 8, 13, 21}

	for _, st := range allStrategies() {
		if !st.biased {
			continue
		}
		assert.Equal(t, 1, st.s.Search(keys, 4, 3), st.name)
	}
}

func TestSingleElement(t *testing.T) {
	keys := []uint64{10}

	for _, st := range allStrategies() {
		t.Run(st.name, func(t *testing.T) {
			assert.Equal(t, 0, st.s.Search(keys, 0, 5))
			assert.Equal(t, 0, st.s.Search(keys, 0, 10))
			assert.Equal(t, 1, st.s.Search(keys, 0, 11))
		})
	}
}

func TestAllEqual(t *testing.T) {
	keys := make([]uint64, 33)
	for i := range keys {
		keys[i] = 5
	}

	for _, st := range allStrategies() {
		t.Run(st.name, func(t *testing.T) {
			for pred := range keys {
				assert.Equal(t, 0, st.s.Search(keys, pred, 5))
				assert.Equal(t, 0, st.s.Search(keys, pred, 4))
				assert.Equal(t, len(keys), st.s.Search(keys, pred, 6))
			}
		})
	}
}

func TestConcurrentSearches(t *testing.T) {
	rng := testutil.NewRNG(99)
	keys := rng.SortedKeys(4096, 5)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		seed := int64(w)
		g.Go(func() error {
			wrng := testutil.NewRNG(seed)
			for i := 0; i < 2000; i++ {
				value := wrng.Uint64() % (keys[len(keys)-1] + 2)
				pred := wrng.Intn(len(keys))
				want := testutil.ReferenceLowerBound(keys, value)

				for _, st := range allStrategies() {
					if got := st.s.Search(keys, pred, value); got != want {
						return fmt.Errorf("%s: got %d, want %d (value=%d pred=%d)",
							st.name, got, want, value, pred)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
