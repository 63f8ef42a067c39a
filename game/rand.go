package game

import "golang.org/x/exp/rand"

// Random is the source of the uniform draws used to resolve rounds and pick prompts.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a generator seeded with seed. Equal seeds replay equal games.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws an integer from [lo, hi], both ends inclusive.
func uniform(r Random, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
