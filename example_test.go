package rmisearch_test

import (
	"fmt"

	"github.com/hupe1980/rmisearch"
)

func ExampleNew() {
	keys := []uint64{1, 3, 3, 5, 8, 13, 21}

	s, err := rmisearch.New[uint64](rmisearch.KindBiasedExponential)
	if err != nil {
		panic(err)
	}

	// A model predicted position 4; the true lower bound of 3 is index 1.
	fmt.Println(s.Search(keys, 4, 3))
	// Output: 1
}

func ExampleNewInteger() {
	keys := []uint64{2, 4, 8, 16, 32, 64, 128, 256, 512}

	s, err := rmisearch.NewInteger[uint64](rmisearch.KindVectorLinear)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Search(keys, 0, 100))
	fmt.Println(s.Search(keys, 0, 1000))
	// Output:
	// 7
	// 9
}

func ExampleParseKind() {
	kind, ok := rmisearch.ParseKind("biased-binary")
	fmt.Println(kind, ok)
	// Output: biased-binary true
}
