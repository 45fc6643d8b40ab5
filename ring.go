package main

import (
	"fmt"
	"math/rand"
)

// Ring is an ordered collection with a movable current index. The index
// wraps in both directions, so the same type serves deterministic cycling
// (piece rotations) and uniform random reselection (piece types).
type Ring[T any] struct {
	items []T
	index int
}

// NewRing builds a ring over the given items. At least one item is
// required; the first item starts as current.
func NewRing[T any](items ...T) (*Ring[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("ring: at least one item required")
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return &Ring[T]{items: owned}, nil
}

// Len returns the number of items.
func (r *Ring[T]) Len() int { return len(r.items) }

// Current returns the item at the current index.
func (r *Ring[T]) Current() T { return r.items[r.index] }

// Next advances the index by one, wrapping past the end, and returns the
// new current item.
func (r *Ring[T]) Next() T {
	r.index = (r.index + 1) % len(r.items)
	return r.items[r.index]
}

// Prev retreats the index by one, wrapping past the start, and returns the
// new current item. Prev is the exact inverse of Next.
func (r *Ring[T]) Prev() T {
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
	return r.items[r.index]
}

// RandomSelect moves the index to a uniformly random position and returns
// the new current item.
func (r *Ring[T]) RandomSelect(rng *rand.Rand) T {
	r.index = rng.Intn(len(r.items))
	return r.items[r.index]
}
