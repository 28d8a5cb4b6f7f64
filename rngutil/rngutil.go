// Package rngutil centralizes deterministic random-number generation for the
// belief grid's sampling, the search engine's tie-breaking, and the
// Sample-Star loop's per-rollout streams.
//
// Adapted from tsp/rng.go's rngFromSeed/deriveSeed SplitMix64-style mixing,
// generalized from a package-private helper into a shared utility so every
// subsystem that needs an independent deterministic RNG stream derives it
// the same way.
package rngutil

import "math/rand"

// DefaultSeed is the fixed seed used when a caller passes seed == 0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand. seed == 0 selects DefaultSeed.
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, giving independent,
// well-distributed substreams for a fixed parent.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG and
// a stream identifier. If base is nil, DefaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once to decorrelate consecutive
// derivations before mixing in the stream id.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
