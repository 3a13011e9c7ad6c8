// Package chance provides weighted random selection for games: loot
// tables, spawn tables, and anything else picked by relative weight.
package chance

import (
	"errors"
	"math/rand"
)

// WeightedEntry pairs an item with its selection weight. Weights are
// relative; they do not need to sum to anything in particular.
type WeightedEntry[T any] struct {
	Item   T
	Weight float64
}

// WeightedPicker samples items with probability proportional to their
// weights. This is how loot tables work: heavier entries drop more often.
//
// It is built with Vose's alias method, so construction is O(n) and every
// pick is O(1) regardless of table size. The trade-off is that weights are
// frozen at construction; build a new picker to change them.
//
// Sampling draws from a caller-owned *rand.Rand, so a seeded source gives
// fully deterministic picks. A picker is safe for concurrent reads as long
// as each goroutine brings its own rand source.
type WeightedPicker[T any] struct {
	prob  []float64
	alias []int
	items []T
}

// ErrNoEntries is returned when building a picker from an empty table.
var ErrNoEntries = errors.New("chance: no entries to pick from")

// ErrBadWeight is returned when a weight is negative or the total weight
// is not positive.
var ErrBadWeight = errors.New("chance: weights must be non-negative with a positive total")

// NewWeightedPicker builds a picker from the given entries.
func NewWeightedPicker[T any](entries []WeightedEntry[T]) (*WeightedPicker[T], error) {
	n := len(entries)
	if n == 0 {
		return nil, ErrNoEntries
	}

	total := 0.0
	for _, e := range entries {
		if e.Weight < 0 {
			return nil, ErrBadWeight
		}
		total += e.Weight
	}
	if total <= 0 {
		return nil, ErrBadWeight
	}

	p := &WeightedPicker[T]{
		prob:  make([]float64, n),
		alias: make([]int, n),
		items: make([]T, n),
	}

	// Scale each weight so the average column is exactly 1, then pair
	// every underfull column with an overfull donor.
	scaled := make([]float64, n)
	var small, large []int
	for i, e := range entries {
		p.items[i] = e.Item
		scaled[i] = e.Weight / total * float64(n)
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		less := small[len(small)-1]
		small = small[:len(small)-1]
		more := large[len(large)-1]
		large = large[:len(large)-1]

		p.prob[less] = scaled[less]
		p.alias[less] = more

		scaled[more] += scaled[less] - 1
		if scaled[more] < 1 {
			small = append(small, more)
		} else {
			large = append(large, more)
		}
	}

	// Whatever is left is a full column; float error may leave entries on
	// either stack.
	for _, i := range small {
		p.prob[i] = 1
	}
	for _, i := range large {
		p.prob[i] = 1
	}

	return p, nil
}

// Pick samples one item.
func (p *WeightedPicker[T]) Pick(rng *rand.Rand) T {
	return p.items[p.PickIndex(rng)]
}

// PickIndex samples an index into the picker's table. Useful when the
// caller keeps a parallel structure keyed by entry position.
func (p *WeightedPicker[T]) PickIndex(rng *rand.Rand) int {
	column := rng.Intn(len(p.prob))
	if rng.Float64() < p.prob[column] {
		return column
	}
	return p.alias[column]
}

// Len returns the number of entries in the table.
func (p *WeightedPicker[T]) Len() int {
	return len(p.items)
}

// At returns the item at the given table position.
func (p *WeightedPicker[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(p.items) {
		var zero T
		return zero, false
	}
	return p.items[i], true
}

// PickOne builds a throwaway picker and samples it once. Convenient for
// one-off rolls; use a long-lived WeightedPicker for repeated sampling.
func PickOne[T any](rng *rand.Rand, entries []WeightedEntry[T]) (T, error) {
	p, err := NewWeightedPicker(entries)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Pick(rng), nil
}
