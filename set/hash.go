package set

import (
	"fmt"
	"hash/fnv"
	"math/bits"
)

// HashFunc maps an element to a 64-bit hash. A HashFunc must be consistent
// with the EqualFunc used alongside it: equal elements hash equally.
type HashFunc[T any] func(v T) uint64

// EqualFunc reports whether two elements are the same for set membership.
type EqualFunc[T any] func(a, b T) bool

// defaultHash hashes the fmt rendering of v with fnv-1a. Slow but works for
// every type; callers with hot paths inject their own HashFunc.
func defaultHash[T any](v T) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", v)
	return h.Sum64()
}

func defaultEqual[T comparable](a, b T) bool {
	return a == b
}

// nextPowerOfTwo returns the smallest power of two >= n. n must be positive.
func nextPowerOfTwo(n int) int {
	if bits.OnesCount(uint(n)) == 1 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// normalizeCapacity validates a requested capacity and rounds it up to a
// power of two.
func normalizeCapacity(capacity int) (int, error) {
	if capacity <= 0 {
		return 0, ErrInvalidCapacity
	}
	return nextPowerOfTwo(capacity), nil
}
