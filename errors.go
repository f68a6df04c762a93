package chtable

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrAllocation is returned when the bucket array cannot be allocated,
	// either at construction or while growing.
	ErrAllocation = errors.New("bucket allocation failed")

	// ErrInvalidCapacity is returned for a non-positive initial capacity or
	// a growth function that does not grow the table.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrNilStrategy is returned when the hash or equality function is nil.
	ErrNilStrategy = errors.New("hash and equal functions are required")
)

// allocBuckets allocates n empty chains. Impossible lengths make the runtime
// panic; that panic is turned into ErrAllocation.
func allocBuckets[K, V any](n int) (buckets [][]entry[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buckets = nil
			err = fmt.Errorf("%w: %d buckets: %v", ErrAllocation, n, re)
		}
	}()
	if n <= 0 || n > maxCapacity {
		return nil, fmt.Errorf("%w: %d buckets", ErrAllocation, n)
	}
	return make([][]entry[K, V], n), nil
}
