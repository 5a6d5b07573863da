package arcade

import (
	"math/rand"
	"time"
)

// Rand is a seeded random source for spawn positions and spawn chances.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a source from seed. A zero seed picks one from the wall
// clock, so only explicitly seeded rounds are reproducible.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [min, max], both ends inclusive.
func (r *Rand) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.Intn(max-min+1)
}
