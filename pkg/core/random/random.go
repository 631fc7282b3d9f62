// Package random provides the random primitives used by poster composition.
//
// Every random decision in a layout pass goes through a [Source], so a pass
// can be reproduced from a seed ([New]) or driven by a fixed script of
// draws ([NewSequence]) in tests.
package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrEmptyChoice is returned by [Choice] when there is nothing to choose from.
var ErrEmptyChoice = errors.New("choice from empty list")

// Source draws uniform integers. IntN returns a value in [0, n) and is only
// called with n > 0.
type Source interface {
	IntN(n int) int
}

type pcgSource struct {
	rng *rand.Rand
}

// New returns a PCG-backed source. The same seed yields the same sequence.
func New(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *pcgSource) IntN(n int) int { return s.rng.IntN(n) }

// Choice returns a uniformly random element of items.
func Choice[T any](src Source, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyChoice
	}
	return items[src.IntN(len(items))], nil
}

// FlipCoin returns true or false with equal probability.
func FlipCoin(src Source) bool {
	return src.IntN(2) == 1
}

// RandInt returns an integer uniformly distributed in [lo, hi].
// It panics if lo > hi.
func RandInt(src Source, lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("random: RandInt with lo %d > hi %d", lo, hi))
	}
	return lo + src.IntN(hi-lo+1)
}

// Sample returns k distinct elements of items drawn without replacement.
// When k >= len(items) every element is returned exactly once; when k <= 0
// the result is empty. The input slice is not modified.
func Sample[T any](src Source, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	pool := slices.Clone(items)
	k = min(k, len(pool))
	for i := range k {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
