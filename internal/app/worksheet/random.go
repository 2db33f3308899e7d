package worksheet

import "math/rand/v2"

// NewRand returns the random stream for a seed. One run uses one stream for
// all of its worksheets, so the same seed and count reproduce the same
// sheets.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// RandomSeed picks a fresh seed from the runtime's global source.
func RandomSeed() uint64 {
	return rand.Uint64()
}
