package seeding

import "math/rand/v2"

// Weighted is one outcome of a weighted draw.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// weightedChoice draws one value with probability Weight/sum(Weight).
// Options with a non-positive weight are never drawn; at least one must be positive.
func weightedChoice[T any](r *rand.Rand, options []Weighted[T]) T {
	total := 0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total == 0 {
		panic("seeding: weightedChoice needs a positive weight")
	}

	n := r.IntN(total)
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		if n < o.Weight {
			return o.Value
		}
		n -= o.Weight
	}
	panic("unreachable")
}

// pick draws uniformly from options.
func pick[T any](r *rand.Rand, options []T) T {
	return options[r.IntN(len(options))]
}
