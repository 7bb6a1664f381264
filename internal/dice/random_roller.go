package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller on top of math/rand.
// *rand.Rand is not safe for concurrent use so draws are serialized.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed, useful for reproducing a raid
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Between implements Roller.Between
func (r *randomRoller) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return min + r.rng.Intn(max-min+1)
}

// Factor implements Roller.Factor
func (r *randomRoller) Factor(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return min + r.rng.Float64()*(max-min)
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Float64() < p
}
