package rmisearch

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/hupe1980/rmisearch/internal/simd"
	"github.com/hupe1980/rmisearch/search"
)

// New constructs the strategy identified by kind for any ordered key type.
//
// The vector kinds are rejected with *ErrUnsupportedKeyType because they
// need fixed-width integer keys; use NewInteger for those.
func New[K cmp.Ordered](kind Kind, optFns ...Option) (search.Searcher[K], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	var s search.Searcher[K]
	switch kind {
	case KindLinear:
		s = search.Linear[K]{}
	case KindBiasedLinear:
		s = search.BiasedLinear[K]{}
	case KindBinary:
		s = search.Binary[K]{}
	case KindBiasedBinary:
		s = search.BiasedBinary[K]{}
	case KindExponential:
		s = search.Exponential[K]{}
	case KindBiasedExponential:
		s = search.BiasedExponential[K]{}
	case KindBranchlessBinary:
		s = search.BranchlessBinary[K]{}
	case KindBiasedBranchlessBinary:
		s = search.BiasedBranchlessBinary[K]{}
	case KindVectorLinear, KindBiasedVectorLinear:
		return nil, &ErrUnsupportedKeyType{Kind: kind}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, kind)
	}

	logSelected(o, kind)
	return s, nil
}

// NewInteger constructs the strategy identified by kind for fixed-width
// integer keys. All kinds are supported, including the vector ones.
func NewInteger[K search.Integer](kind Kind, optFns ...Option) (search.Searcher[K], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	var s search.Searcher[K]
	switch kind {
	case KindVectorLinear:
		s = search.VectorLinear[K]{}
	case KindBiasedVectorLinear:
		s = search.BiasedVectorLinear[K]{}
	default:
		return New[K](kind, optFns...)
	}

	logSelected(o, kind)
	return s, nil
}

func logSelected(o *options, kind Kind) {
	o.logger.Debug("search strategy selected",
		slog.String("strategy", kind.String()),
		slog.Bool("biased", kind.Biased()),
		slog.String("simd", ActiveISA()),
	)
}

// ActiveISA returns the name of the SIMD instruction set the vector
// strategies run on for this process ("generic" means scalar fallback).
// Set RMISEARCH_SIMD to override the automatic selection.
func ActiveISA() string {
	return simd.ActiveISA().String()
}
