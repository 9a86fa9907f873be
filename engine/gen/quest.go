package gen

import (
	"fmt"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Quest expands a quest archetype into a concrete multi-stage quest.
// The giver's name, role, and faction are woven into the quest text.
// Selection filters on location type, the giver's faction, and the
// archetype's minimum level; returns (zero, false) when nothing fits.
func Quest(rng *engine.Stream, pack *types.Pack, ctx types.GenerationContext, giver *types.NPC) (types.Quest, bool) {
	arch, ok := pickTemplate(rng, pack.QuestArchetypes,
		func(a types.QuestArchetype) int { return a.Weight },
		func(a types.QuestArchetype) bool {
			if !matchesFilter(a.ValidLocationTypes, ctx.LocationType) {
				return false
			}
			if a.MinLevel > ctx.PlayerLevel {
				return false
			}
			if giver != nil && !matchesFilter(a.ValidFactions, giver.Faction) {
				return false
			}
			return true
		})
	if !ok {
		return types.Quest{}, false
	}

	vars := map[string]string{
		"location": ctx.LocationID,
		"region":   ctx.RegionID,
	}
	if giver != nil {
		vars["giver"] = giver.Name
		vars["giver_role"] = giver.Role
		vars["giver_faction"] = giver.Faction
	}
	// One value is drawn per archetype variable, shared by every stage so
	// the quest text stays coherent.
	for _, key := range sortedKeys(arch.Variables) {
		if pool := arch.Variables[key]; len(pool) > 0 {
			vars[key] = engine.Pick(rng, pool)
		}
	}

	q := types.Quest{
		ID:          fmt.Sprintf("quest_%s_%04d", arch.ID, rng.Int(0, 9999)),
		ArchetypeID: arch.ID,
		Category:    arch.Category,
		Prereqs:     types.Prerequisites{MinLevel: arch.MinLevel},
	}
	if giver != nil {
		q.GiverID = giver.ID
	}
	if len(arch.Titles) > 0 {
		q.Title = Substitute(engine.Pick(rng, arch.Titles), vars)
	}
	if len(arch.Descriptions) > 0 {
		q.Description = Substitute(engine.Pick(rng, arch.Descriptions), vars)
	}

	for si, st := range arch.Stages {
		stage := types.QuestStage{
			ID:          fmt.Sprintf("%s_s%d", q.ID, si+1),
			Title:       Substitute(st.Title, vars),
			Description: Substitute(st.Description, vars),
			Rewards: types.Reward{
				XP:   scaledReward(rng, st.RewardXP, ctx.PlayerLevel),
				Gold: scaledReward(rng, st.RewardGold, ctx.PlayerLevel),
			},
		}
		for oi, ot := range st.Objectives {
			stage.Objectives = append(stage.Objectives, types.Objective{
				ID:       fmt.Sprintf("%s_o%d", stage.ID, oi+1),
				Type:     ot.Type,
				Target:   Substitute(ot.Target, vars),
				Count:    rng.Int(ot.Count.Min, ot.Count.Max),
				Optional: ot.Optional,
			})
		}
		q.Stages = append(q.Stages, stage)
	}

	q.Rewards = types.Reward{
		XP:   scaledReward(rng, arch.RewardXP, ctx.PlayerLevel),
		Gold: scaledReward(rng, arch.RewardGold, ctx.PlayerLevel),
	}
	return q, true
}

// scaledReward draws from a reward range and scales it by player level.
// A zero range yields zero without consuming a draw, so optional reward
// fields don't shift the stream.
func scaledReward(rng *engine.Stream, r types.IntRange, level int) int {
	if r.Min == 0 && r.Max == 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return rng.Int(r.Min, r.Max) * level
}
