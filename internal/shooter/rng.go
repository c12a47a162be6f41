package shooter

import (
	"math/rand"
	"time"
)

// Rand is the randomness the simulation draws from: enemy headings and
// spawn positions. Seeding it makes a session reproducible.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
