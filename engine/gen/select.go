package gen

import (
	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// matchesFilter reports whether value is compatible with an applicability
// filter. An empty filter list means "applies universally".
func matchesFilter(filter []string, value string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == value {
			return true
		}
	}
	return false
}

// intersects reports whether the filter intersects the value set.
// An empty filter applies universally.
func intersects(filter, values []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		for _, v := range values {
			if f == v {
				return true
			}
		}
	}
	return false
}

// pickTemplate filters candidates with keep, then weighted-picks among
// the survivors. Returns (zero, false) when nothing survives filtering.
func pickTemplate[T any](rng *engine.Stream, items []T, weight func(T) int, keep func(T) bool) (T, bool) {
	var zero T
	var survivors []T
	var weights []int
	for _, it := range items {
		if keep != nil && !keep(it) {
			continue
		}
		w := weight(it)
		if w <= 0 {
			continue
		}
		survivors = append(survivors, it)
		weights = append(weights, w)
	}
	if len(survivors) == 0 {
		return zero, false
	}
	idx := rng.WeightedIndex(weights)
	if idx < 0 {
		return zero, false
	}
	return survivors[idx], true
}

// pickWeightedValue selects among weighted string values.
func pickWeightedValue(rng *engine.Stream, items []types.Weighted) (string, bool) {
	weights := make([]int, len(items))
	for i, it := range items {
		weights[i] = it.Weight
	}
	idx := rng.WeightedIndex(weights)
	if idx < 0 {
		return "", false
	}
	return items[idx].Value, true
}
