package mockdice

import (
	"sync"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// When a queue runs dry it falls back to a neutral value: the lower bound for
// Between, 1.0 (clamped into range) for Factor and false for Chance.
type ManualMockRoller struct {
	mu      sync.Mutex
	ints    []int
	factors []float64
	chances []bool
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetInts queues results for Between
func (m *ManualMockRoller) SetInts(values ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = append(m.ints, values...)
}

// SetFactors queues results for Factor
func (m *ManualMockRoller) SetFactors(values ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factors = append(m.factors, values...)
}

// SetChances queues results for Chance
func (m *ManualMockRoller) SetChances(values ...bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chances = append(m.chances, values...)
}

// Reset clears all queued results
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = nil
	m.factors = nil
	m.chances = nil
}

// Between implements dice.Roller.Between
func (m *ManualMockRoller) Between(min, max int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.ints) == 0 {
		return min
	}
	v := m.ints[0]
	m.ints = m.ints[1:]
	return dice.Clamp(v, min, max)
}

// Factor implements dice.Roller.Factor
func (m *ManualMockRoller) Factor(min, max float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := 1.0
	if len(m.factors) > 0 {
		v = m.factors[0]
		m.factors = m.factors[1:]
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Chance implements dice.Roller.Chance
func (m *ManualMockRoller) Chance(p float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.chances) == 0 {
		return false
	}
	v := m.chances[0]
	m.chances = m.chances[1:]
	return v
}
