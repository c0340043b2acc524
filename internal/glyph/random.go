package glyph

import "math/rand/v2"

// Randomizer supplies the fallback draws. *rand.Rand satisfies it.
type Randomizer interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// RandomizerFunc adapts a plain function to Randomizer.
type RandomizerFunc func(n int) int

func (f RandomizerFunc) IntN(n int) int { return f(n) }

// GlobalRandom draws from the runtime's shared source, which is safe for
// concurrent use.
var GlobalRandom Randomizer = RandomizerFunc(rand.IntN)

// Seeded returns a deterministic Randomizer. Not safe for concurrent use.
func Seeded(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
