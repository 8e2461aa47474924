package fixedmap

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// slotCount returns the number of buckets for a map holding capacity items:
// the smallest power of two strictly greater than capacity, plus one.
func slotCount(capacity int) int {
	return 1<<bits.Len(uint(capacity)) + 1
}

// hashKey computes a 64-bit xxHash of the key
func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// slotIndex maps key onto one of n buckets.
func slotIndex(key string, n int) int {
	return int(hashKey(key) % uint64(n))
}
