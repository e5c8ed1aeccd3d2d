package addressgen

import "math/rand"

// weightedEntry pairs a candidate value with its selection weight.
type weightedEntry[T any] struct {
	value  T
	weight float64
}

// pickWeighted returns one entry respecting the weight distribution. It
// scales a single uniform draw by the total weight and walks the entries in
// order, returning the first whose cumulative weight exceeds the draw. A
// value landing exactly on a bucket boundary belongs to the earlier bucket.
// Weights are a caller obligation: non-negative with a positive total;
// malformed input is a programming defect, not a recoverable condition.
func pickWeighted[T any](rnd *rand.Rand, entries []weightedEntry[T]) T {
	var total float64
	for i := range entries {
		total += entries[i].weight
	}

	r := rnd.Float64() * total
	var sum float64
	for i := range entries {
		sum += entries[i].weight
		if sum > r {
			return entries[i].value
		}
	}
	panic("addressgen: weighted pick fell through, check weights")
}

// oneOf returns a with probability p and b otherwise.
func oneOf[T any](rnd *rand.Rand, p float64, a, b T) T {
	if rnd.Float64() < p {
		return a
	}
	return b
}

// pickOne returns a uniformly random element of a non-empty slice.
func pickOne[T any](rnd *rand.Rand, s []T) T {
	return s[rnd.Intn(len(s))]
}
