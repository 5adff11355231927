package solver

import "golang.org/x/exp/constraints"

// argMax returns the index of the first largest element; ties keep the earliest.
// xs must not be empty.
func argMax[T constraints.Ordered](xs []T) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
