// Package aco - deterministic random generation.
//
// All randomness in the colony flows from Options.Seed through this
// file. There are no time-based sources: the same seed reproduces the
// same run, which is what makes stochastic path construction testable.
//
// Concurrency: math/rand.Rand is not goroutine-safe, so every ant gets
// its own substream derived from (seed, iteration, ant index). Streams
// are derived from the base seed value rather than a shared generator,
// so results do not depend on how many workers execute the ants.
package aco

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0,
// keeping zero-value configuration reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the given seed,
// applying the seed==0 ⇒ defaultRNGSeed policy.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style finalizer (Vigna 2014). The
// avalanche mix removes correlations between adjacent stream IDs.
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

// antStream maps (iteration, ant index) to a unique stream identifier.
func antStream(iteration, ant, antCount int) uint64 {
	return uint64(iteration)*uint64(antCount) + uint64(ant)
}

// antRNG builds the independent deterministic generator for one ant.
// The seed==0 policy is applied before mixing so that seed 0 and seed
// defaultRNGSeed are the same colony.
func antRNG(seed int64, iteration, ant, antCount int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, antStream(iteration, ant, antCount))))
}
