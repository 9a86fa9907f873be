package gen

import (
	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Gender buckets for name pools. GenderDistribution indexes map to these
// in order: male, female, neutral.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderNeutral = "neutral"
)

// Name assembles a character name: weighted origin pick, 3-way gender
// bucket, a first name from the matching pool, an independent surname,
// and one of the pool's pattern strings. Returns (name, gender, false)
// when no origin resolves to a known pool.
func Name(rng *engine.Stream, pools map[string]types.NamePool, origins []types.Weighted, dist [3]float64) (string, string, bool) {
	var known []types.Weighted
	for _, o := range origins {
		if _, ok := pools[o.Value]; ok {
			known = append(known, o)
		}
	}
	origin, ok := pickWeightedValue(rng, known)
	if !ok {
		return "", "", false
	}
	pool := pools[origin]

	gender := pickGender(rng, dist)
	first := firstName(rng, pool, gender)
	last := engine.Pick(rng, pool.Surnames)

	pattern := "{{first}} {{last}}"
	if len(pool.Patterns) > 0 {
		pattern = engine.Pick(rng, pool.Patterns)
	}

	vars := map[string]string{
		"first": first,
		"last":  last,
	}
	if len(pool.Titles) > 0 {
		vars["title"] = engine.Pick(rng, pool.Titles)
	}
	return Substitute(pattern, vars), gender, true
}

// pickGender samples the 3-way gender distribution with a single draw.
func pickGender(rng *engine.Stream, dist [3]float64) string {
	r := rng.Next()
	switch {
	case r < dist[0]:
		return GenderMale
	case r < dist[0]+dist[1]:
		return GenderFemale
	default:
		return GenderNeutral
	}
}

// firstName draws from the pool bucket matching gender, falling back to
// whichever buckets are populated.
func firstName(rng *engine.Stream, pool types.NamePool, gender string) string {
	buckets := map[string][]string{
		GenderMale:    pool.Male,
		GenderFemale:  pool.Female,
		GenderNeutral: pool.Neutral,
	}
	if names := buckets[gender]; len(names) > 0 {
		return engine.Pick(rng, names)
	}
	for _, g := range []string{GenderNeutral, GenderMale, GenderFemale} {
		if names := buckets[g]; len(names) > 0 {
			return engine.Pick(rng, names)
		}
	}
	return ""
}
