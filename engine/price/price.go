// Package price composes condition-gated multiplicative modifiers into a
// final price. Composition is commutative, so modifier order never
// matters.
package price

import (
	"math"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Applies reports whether a modifier applies: its item-tag filter is
// empty or intersects the item's tags, its location-type and region
// filters are empty or contain the context's values, and every condition
// evaluates true.
func Applies(m types.PriceModifier, itemTags []string, ctx types.PricingContext) bool {
	if !tagsIntersect(m.ItemTags, itemTags) {
		return false
	}
	if !contains(m.LocationTypes, ctx.LocationType) {
		return false
	}
	if !contains(m.Regions, ctx.Region) {
		return false
	}
	for _, c := range m.Conditions {
		if !EvalCondition(c, ctx) {
			return false
		}
	}
	return true
}

// EvalCondition evaluates one pricing condition. A nil condition is
// permissive: the loader drops unknown authored condition types, and an
// absent predicate must never veto a modifier.
func EvalCondition(c types.PriceCondition, ctx types.PricingContext) bool {
	switch cond := c.(type) {
	case types.EventActive:
		for _, e := range ctx.ActiveEvents {
			if e == cond.Event {
				return true
			}
		}
		return false

	case types.SeasonIs:
		return ctx.Season == cond.Season

	case types.PopulationBelow:
		return ctx.Population < cond.Max

	case types.DangerAbove:
		return ctx.DangerLevel > cond.Min

	case types.TensionAbove:
		if cond.Faction != "" {
			return ctx.FactionTensions[cond.Faction] > cond.Min
		}
		for _, tension := range ctx.FactionTensions {
			if tension > cond.Min {
				return true
			}
		}
		return false

	case types.HasFeature:
		for _, f := range ctx.Features {
			if f == cond.Feature {
				return true
			}
		}
		return false

	default:
		return true
	}
}

// Quote composes every applicable modifier's midpoint multiplier and
// returns round(base × composite). Deterministic: no randomness.
func Quote(base float64, itemTags []string, ctx types.PricingContext, mods []types.PriceModifier) int {
	multiplier := 1.0
	for _, m := range mods {
		if Applies(m, itemTags, ctx) {
			multiplier *= (m.Multiplier.Min + m.Multiplier.Max) / 2
		}
	}
	return int(math.Round(base * multiplier))
}

// QuoteStochastic composes applicable modifiers, each sampling uniformly
// within its multiplier range from the caller-supplied stream.
func QuoteStochastic(base float64, itemTags []string, ctx types.PricingContext, mods []types.PriceModifier, rng *engine.Stream) int {
	multiplier := 1.0
	for _, m := range mods {
		if Applies(m, itemTags, ctx) {
			multiplier *= rng.Float(m.Multiplier.Min, m.Multiplier.Max)
		}
	}
	return int(math.Round(base * multiplier))
}

func contains(filter []string, value string) bool {
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

func tagsIntersect(filter, tags []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		for _, t := range tags {
			if f == t {
				return true
			}
		}
	}
	return false
}
