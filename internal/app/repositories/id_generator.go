package repositories

import (
	"fmt"
	"math/rand"

	"github.com/yigit/academics/internal/pkg/apperrors"
)

// Supported id strategies
const (
	IDStrategySequential = "sequential"
	IDStrategyRandom     = "random"
)

// IDGenerator hands out identifiers that are not in use by a container.
// taken reports whether an id is live. Neither strategy hands out an id twice
// in the life of the generator, even after the registry is cleared, so a
// session token issued before a clear cannot resolve to a new academic.
type IDGenerator interface {
	Next(taken func(int64) bool) (int64, error)
}

// NewIDGenerator returns the generator for the named strategy. max bounds the
// random strategy and is ignored by the sequential one.
func NewIDGenerator(strategy string, max int64) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategySequential:
		return &SequentialIDGenerator{}, nil
	case IDStrategyRandom:
		if max <= 0 {
			return nil, fmt.Errorf("random id range must be positive, got %d", max)
		}
		return &RandomIDGenerator{Max: max}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// SequentialIDGenerator counts upwards from 1.
type SequentialIDGenerator struct {
	last int64
}

// Next returns the next unused counter value.
func (g *SequentialIDGenerator) Next(taken func(int64) bool) (int64, error) {
	for {
		g.last++
		if !taken(g.last) {
			return g.last, nil
		}
	}
}

// RandomIDGenerator draws ids uniformly from [1, Max], retrying on collision
// with any id it has already issued.
type RandomIDGenerator struct {
	Max int64

	// Intn is swapped out in tests. Defaults to math/rand.
	Intn func(n int64) int64

	issued map[int64]struct{}
}

// Next draws candidates until one is free. The space is exhausted once every
// id in the range has been issued, whether or not it is still live.
func (g *RandomIDGenerator) Next(taken func(int64) bool) (int64, error) {
	if g.issued == nil {
		g.issued = make(map[int64]struct{})
	}
	if int64(len(g.issued)) >= g.Max {
		return 0, apperrors.ErrIDSpaceExhausted
	}

	intn := g.Intn
	if intn == nil {
		intn = rand.Int63n
	}

	for {
		candidate := intn(g.Max) + 1
		if _, used := g.issued[candidate]; used || taken(candidate) {
			continue
		}
		g.issued[candidate] = struct{}{}
		return candidate, nil
	}
}
