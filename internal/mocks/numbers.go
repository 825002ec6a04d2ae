package mocks

import (
	"sync"

	"github.com/easybank/easybank-services/internal/domain"
)

// SequenceGenerator returns Numbers in order and then repeats the last one.
type SequenceGenerator struct {
	Numbers []int64

	mu   sync.Mutex
	next int
}

var _ domain.NumberGenerator = (*SequenceGenerator)(nil)

// NewSequenceGenerator creates a generator yielding numbers in order.
func NewSequenceGenerator(numbers ...int64) *SequenceGenerator {
	return &SequenceGenerator{Numbers: numbers}
}

// Next implements domain.NumberGenerator.
func (g *SequenceGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.Numbers) == 0 {
		return 0
	}
	i := g.next
	if i >= len(g.Numbers) {
		i = len(g.Numbers) - 1
	} else {
		g.next++
	}
	return g.Numbers[i]
}

// Drawn reports how many numbers have been handed out, not counting repeats.
func (g *SequenceGenerator) Drawn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next
}
