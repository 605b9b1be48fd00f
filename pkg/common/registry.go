package common

import (
	"sort"

	"github.com/eth-easl/analyzer/pkg/workload/standard"
)

var registry = map[string]AlgorithmSpec{
	Bubble: {
		Key:        Bubble,
		Name:       "Bubble Sort",
		Complexity: ComplexityQuadratic,
		Run: func(size int) error {
			if size < 0 {
				return standard.ErrNegativeSize
			}
			_ = standard.BubbleSort(size)
			return nil
		},
	},
	Linear: {
		Key:        Linear,
		Name:       "Linear Search",
		Complexity: ComplexityLinear,
		Run: func(size int) error {
			if size < 0 {
				return standard.ErrNegativeSize
			}
			_ = standard.LinearSearch(size)
			return nil
		},
	},
	Binary: {
		Key:        Binary,
		Name:       "Binary Search",
		Complexity: ComplexityLogarithmic,
		Run: func(size int) error {
			if size < 0 {
				return standard.ErrNegativeSize
			}
			_ = standard.BinarySearch(size)
			return nil
		},
	},
	Nested: {
		Key:        Nested,
		Name:       "Nested Loops",
		Complexity: ComplexityQuadratic,
		Run: func(size int) error {
			if size < 0 {
				return standard.ErrNegativeSize
			}
			_ = standard.NestedLoops(size)
			return nil
		},
	},
}

// LookupAlgorithm returns the registered algorithm for an already normalized key.
func LookupAlgorithm(key string) (AlgorithmSpec, bool) {
	spec, ok := registry[key]
	return spec, ok
}

// AvailableAlgorithms lists the registered keys in sorted order.
func AvailableAlgorithms() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
