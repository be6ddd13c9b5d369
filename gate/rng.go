// Package gate - RNG utilities for seedable traversal gates.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. HazardGate serializes access under its mutex.
//   - Use deriveSeed to create independent streams for parallel searches.
package gate

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for seeded gates.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a *rand.Rand seeded from the wall clock, for gates
// whose decisions are meant to differ between runs.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer; small input changes spread across all output bits.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
