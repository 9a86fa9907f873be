package gen

import (
	"fmt"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// NPC generates one concrete character from the pack's NPC templates.
// Selection filters on the context's location type; returns (zero, false)
// when no template survives filtering.
func NPC(rng *engine.Stream, pack *types.Pack, ctx types.GenerationContext) (types.NPC, bool) {
	tmpl, ok := pickTemplate(rng, pack.NPCTemplates,
		func(t types.NPCTemplate) int { return t.Weight },
		func(t types.NPCTemplate) bool {
			return matchesFilter(t.ValidLocationTypes, ctx.LocationType)
		})
	if !ok {
		return types.NPC{}, false
	}

	name, gender, ok := Name(rng, pack.NamePools, tmpl.NameOrigins, tmpl.GenderDistribution)
	if !ok {
		return types.NPC{}, false
	}

	npc := types.NPC{
		ID:          fmt.Sprintf("npc_%s_%04d", tmpl.ID, rng.Int(0, 9999)),
		TemplateID:  tmpl.ID,
		Name:        name,
		Gender:      gender,
		Role:        tmpl.Role,
		Personality: map[string]float64{},
	}

	if len(tmpl.AllowedFactions) > 0 {
		npc.Faction = engine.Pick(rng, tmpl.AllowedFactions)
	}

	// Trait maps are iterated in sorted order so draw sequences reproduce.
	for _, trait := range sortedKeys(tmpl.Personality) {
		r := tmpl.Personality[trait]
		npc.Personality[trait] = rng.Float(r.Min, r.Max)
	}

	level := ctx.PlayerLevel + rng.Int(tmpl.LevelOffset.Min, tmpl.LevelOffset.Max)
	if level < 1 {
		level = 1
	}
	npc.Level = level

	vars := map[string]string{
		"name":     npc.Name,
		"role":     npc.Role,
		"faction":  npc.Faction,
		"location": ctx.LocationID,
		"region":   ctx.RegionID,
	}
	if len(tmpl.Backstories) > 0 {
		npc.Backstory = Substitute(engine.Pick(rng, tmpl.Backstories), vars)
	}
	if len(tmpl.Descriptions) > 0 {
		npc.Description = Substitute(engine.Pick(rng, tmpl.Descriptions), vars)
	}

	npc.QuestGiver = rng.Bool(tmpl.QuestGiverChance)
	npc.HasShop = rng.Bool(tmpl.ShopChance)

	return npc, true
}
