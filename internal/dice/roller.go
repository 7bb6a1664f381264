package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the random draws the raid engine needs.
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Between returns a uniformly distributed integer in [min, max]
	Between(min, max int) int

	// Factor returns a uniformly distributed multiplier in [min, max)
	Factor(min, max float64) float64

	// Chance reports whether an event with probability p happened
	Chance(p float64) bool
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
