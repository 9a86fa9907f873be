package gen

import (
	"fmt"
	"math"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Encounter generates one concrete encounter. Selection filters on the
// context's biome and time-of-day period; returns (zero, false) when no
// template survives. Enemy levels come from each slot's base level times
// its level scale; rewards scale by the context's player level.
func Encounter(rng *engine.Stream, pack *types.Pack, ctx types.GenerationContext) (types.Encounter, bool) {
	period := engine.PeriodOfHour(ctx.GameHour)
	tmpl, ok := pickTemplate(rng, pack.Encounters,
		func(t types.EncounterTemplate) int { return t.Weight },
		func(t types.EncounterTemplate) bool {
			return matchesFilter(t.ValidBiomes, ctx.Biome) &&
				matchesFilter(t.ValidTimes, period)
		})
	if !ok {
		return types.Encounter{}, false
	}

	enc := types.Encounter{
		ID:         fmt.Sprintf("enc_%s_%04d", tmpl.ID, rng.Int(0, 9999)),
		TemplateID: tmpl.ID,
		RewardXP:   scaledReward(rng, tmpl.RewardXP, ctx.PlayerLevel),
		RewardGold: scaledReward(rng, tmpl.RewardGold, ctx.PlayerLevel),
	}

	for _, slot := range tmpl.Slots {
		count := rng.Int(slot.Count.Min, slot.Count.Max)
		if count <= 0 {
			continue
		}
		scale := slot.LevelScale
		if scale == 0 {
			scale = 1
		}
		level := int(math.Round(float64(slot.BaseLevel) * scale))
		if level < 1 {
			level = 1
		}
		enc.Enemies = append(enc.Enemies, types.EnemyGroup{
			Enemy: slot.Enemy,
			Count: count,
			Level: level,
		})
	}

	if len(tmpl.Intros) > 0 {
		vars := map[string]string{
			"biome":    ctx.Biome,
			"location": ctx.LocationID,
			"region":   ctx.RegionID,
			"period":   period,
		}
		enc.Intro = Substitute(engine.Pick(rng, tmpl.Intros), vars)
	}
	return enc, true
}
