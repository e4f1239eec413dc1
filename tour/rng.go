// Package tour - RNG utilities shared by the heuristic searches.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - The ILS driver gives every restart its own stream via DeriveRand.
package tour

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// restartSeed turns the parent draw of a run and a restart number into the
// seed of that restart's stream. Consecutive restart numbers land far apart
// because each is offset by a multiple of golden before the avalanche step.
//
// Complexity: O(1).
func restartSeed(parent int64, restart uint64) int64 {
	z := uint64(parent) ^ (restart*golden + golden)
	z += golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// DeriveRand returns the stream of restart number restart. The run's base
// stream supplies one Int63 per call, so a run that derives restarts 0..R-1
// in order from one seeded base is reproducible, while every restart still
// draws its construction, descent and perturbation choices from a stream of
// its own. A nil base behaves like NewRand(0).
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, restart uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(restartSeed(parent, restart)))
}

// biasedIndex draws an index in [0..size-1] from a randomized prefix of a
// sorted list: alpha ∈ {1..10} scales size to bound = ⌊alpha·size/10⌋ and the
// index is uniform in [0..bound-1]. A zero bound falls back to the full list.
// size must be positive.
func biasedIndex(rng *rand.Rand, size int) int {
	bound := (1 + rng.Intn(10)) * size / 10
	if bound == 0 {
		bound = size
	}

	return rng.Intn(bound)
}
