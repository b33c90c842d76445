package tools

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// percentile returns the p-th percentile (0..1) by nearest rank.
func percentile[N constraints.Integer | constraints.Float](xs []N, p float64) N {
	if len(xs) == 0 {
		return 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	idx := int(p * float64(len(sorted)-1))
	return sorted[max(0, min(idx, len(sorted)-1))]
}

func mean[N constraints.Integer | constraints.Float](xs []N) N {
	if len(xs) == 0 {
		return 0
	}
	var sum N
	for _, x := range xs {
		sum += x
	}
	return sum / N(len(xs))
}
