// Package rng defines the injectable randomness contract the generator
// uses: every call site takes a Source rather than reaching for a global
// generator, so the same seed reproduces the same puzzle across runs.
package rng

import "golang.org/x/exp/rand"

// Source is the narrow slice of *rand.Rand the generator actually needs.
// A fake implementing this interface is enough to make generator behavior
// deterministic and testable without depending on the real PRNG.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// compile-time check that *rand.Rand satisfies Source.
var _ Source = (*rand.Rand)(nil)

// New returns a Source seeded deterministically from seed.
func New(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}
