package domain

import (
	"fmt"
	"math/rand"
)

// NumberRange is the half-open interval [Min, Min+Span).
type NumberRange struct {
	Min  int64
	Span int64
}

// Contains reports whether n lies inside the range.
func (r NumberRange) Contains(n int64) bool {
	return n >= r.Min && n-r.Min < r.Span
}

// NumberGenerator produces candidate account or card numbers.
// Candidates are not guaranteed unique; callers check them against the store.
type NumberGenerator interface {
	Next() int64
}

// RandomNumberGenerator draws uniformly from a NumberRange.
// It is safe for concurrent use.
type RandomNumberGenerator struct {
	r NumberRange
}

var _ NumberGenerator = (*RandomNumberGenerator)(nil)

// NewRandomNumberGenerator returns a generator for r.
func NewRandomNumberGenerator(r NumberRange) (*RandomNumberGenerator, error) {
	if r.Min <= 0 || r.Span <= 0 {
		return nil, fmt.Errorf("%w: min=%d span=%d", ErrInvalidRange, r.Min, r.Span)
	}
	return &RandomNumberGenerator{r: r}, nil
}

// Next returns a number in the configured range.
func (g *RandomNumberGenerator) Next() int64 {
	return g.r.Min + rand.Int63n(g.r.Span)
}

// Range returns the generator's range.
func (g *RandomNumberGenerator) Range() NumberRange {
	return g.r
}
