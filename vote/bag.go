// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vote provides a weighted tally for the belief solver's vote
// step (spec §4.2: "sum of weights, grouped by submitted answer"),
// adapted from the teacher's utils/bag integer vote counter to carry
// float64 source weights instead of per-node unit votes.
package vote

// Bag tracks a running weighted tally per distinct answer token.
type Bag[T comparable] struct {
	weights map[T]float64
	total   float64
}

// New creates an empty Bag.
func New[T comparable]() Bag[T] {
	return Bag[T]{weights: make(map[T]float64)}
}

// Add accumulates weight for element.
func (b *Bag[T]) Add(element T, weight float64) {
	if weight <= 0 {
		return
	}
	b.weights[element] += weight
	b.total += weight
}

// Weight returns the accumulated weight for element.
func (b *Bag[T]) Weight(element T) float64 {
	return b.weights[element]
}

// Total returns the sum of all weights added.
func (b *Bag[T]) Total() float64 {
	return b.total
}

// Len returns the number of distinct elements with nonzero weight.
func (b *Bag[T]) Len() int {
	return len(b.weights)
}

// List returns all distinct elements with nonzero weight.
func (b *Bag[T]) List() []T {
	list := make([]T, 0, len(b.weights))
	for element := range b.weights {
		list = append(list, element)
	}
	return list
}

// Mode returns the heaviest element and its weight. Ties are broken by
// the order Go happens to range the underlying map in, which callers
// needing a deterministic tie-break must resolve themselves (solver
// breaks ties lexicographically; see solver.pickWinner).
func (b *Bag[T]) Mode() (mode T, weight float64) {
	for element, w := range b.weights {
		if w > weight {
			mode = element
			weight = w
		}
	}
	return mode, weight
}
