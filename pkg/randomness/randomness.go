package randomness

import (
	"math/rand"
)

// Source is a seedable random stream. The zero value is not usable; construct
// with NewSource.
type Source struct {
	rnd *rand.Rand
}

// NewSource returns a source seeded deterministically.
func NewSource(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return s.rnd.Intn(n)
}

// Int63n returns a uniform int64 in [0, n). n must be positive.
func (s *Source) Int63n(n int64) int64 {
	return s.rnd.Int63n(n)
}

// Gaussian returns a normally distributed value with mean 0 and the given
// standard deviation.
func (s *Source) Gaussian(stdev float64) float64 {
	return s.rnd.NormFloat64() * stdev
}

// Member returns a uniformly selected element of items. items must be
// non-empty; an empty slice is a programming error on the caller's side.
func Member[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}
