package gen

import (
	"fmt"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Options controls world generation. Zero values fall back to one region,
// player level 1, noon.
type Options struct {
	Regions     int
	PlayerLevel int
	GameHour    int
}

// Representative hour per period, used when stocking per-period
// encounter tables.
var periodHours = []struct {
	period string
	hour   int
}{
	{engine.PeriodMorning, 8},
	{engine.PeriodDay, 13},
	{engine.PeriodEvening, 19},
	{engine.PeriodNight, 23},
}

// World orchestrates the other generators to populate regions and
// locations. Every region, location, and concern gets its own stream
// derived via CombineSeeds, so regenerating any one piece reproduces it
// exactly regardless of what else was generated. The returned World is
// caller-owned; the generator keeps no reference.
func World(pack *types.Pack, seed int64, opts Options) (types.World, bool) {
	if len(pack.Regions) == 0 {
		return types.World{}, false
	}
	if opts.Regions < 1 {
		opts.Regions = 1
	}
	if opts.PlayerLevel < 1 {
		opts.PlayerLevel = 1
	}
	if opts.GameHour == 0 {
		opts.GameHour = 12
	}

	w := types.World{Seed: seed}
	for i := 0; i < opts.Regions; i++ {
		regionID := fmt.Sprintf("region_%d", i+1)
		rng := engine.NewStream(engine.CombineSeeds(seed, "region:"+regionID))

		tmpl, ok := pickTemplate(rng, pack.Regions,
			func(t types.RegionTemplate) int { return t.Weight }, nil)
		if !ok {
			continue
		}

		region := types.Region{
			ID:    regionID,
			Biome: tmpl.Biome,
			Name:  nameFromParts(rng, tmpl.NamePatterns, tmpl.NameParts),
		}

		count := rng.Int(tmpl.LocationCount.Min, tmpl.LocationCount.Max)
		for j := 0; j < count; j++ {
			locID := fmt.Sprintf("%s_loc_%d", regionID, j+1)
			loc, ok := generateLocation(pack, seed, locID, region, tmpl, opts)
			if !ok {
				continue
			}
			region.Locations = append(region.Locations, loc)
		}
		w.Regions = append(w.Regions, region)
	}
	return w, true
}

// generateLocation populates one location: layout, NPCs, quests for
// quest-givers, dialogue trees, and per-period encounter tables.
func generateLocation(pack *types.Pack, seed int64, locID string, region types.Region, tmpl types.RegionTemplate, opts Options) (types.Location, bool) {
	layout := engine.NewStream(engine.CombineSeeds(seed, "layout:"+locID))

	slot, ok := pickTemplate(layout, tmpl.Locations,
		func(s types.LocationSlot) int { return s.Weight }, nil)
	if !ok {
		return types.Location{}, false
	}

	loc := types.Location{
		ID:          locID,
		Type:        slot.Type,
		Name:        nameFromParts(layout, slot.NamePatterns, slot.NameParts),
		DangerLevel: layout.Float(slot.DangerLevel.Min, slot.DangerLevel.Max),
		Encounters:  map[string][]types.Encounter{},
		Dialogue:    map[string]types.DialogueTree{},
	}

	ctx := types.GenerationContext{
		WorldSeed:    seed,
		RegionID:     region.ID,
		LocationID:   locID,
		LocationType: slot.Type,
		Biome:        region.Biome,
		PlayerLevel:  opts.PlayerLevel,
		GameHour:     opts.GameHour,
	}

	npcs := engine.NewStream(engine.CombineSeeds(seed, "npcs:"+locID))
	quests := engine.NewStream(engine.CombineSeeds(seed, "quests:"+locID))
	talk := engine.NewStream(engine.CombineSeeds(seed, "dialogue:"+locID))

	npcCount := layout.Int(slot.NPCCount.Min, slot.NPCCount.Max)
	for n := 0; n < npcCount; n++ {
		npc, ok := NPC(npcs, pack, ctx)
		if !ok {
			break
		}

		var questID string
		if npc.QuestGiver {
			if q, ok := Quest(quests, pack, ctx, &npc); ok {
				loc.Quests = append(loc.Quests, q)
				questID = q.ID
			}
		}
		if tree, ok := Dialogue(talk, pack, npc, questID); ok {
			loc.Dialogue[npc.ID] = tree
		}
		loc.NPCs = append(loc.NPCs, npc)
	}

	enc := engine.NewStream(engine.CombineSeeds(seed, "encounters:"+locID))
	for _, ph := range periodHours {
		ectx := ctx
		ectx.GameHour = ph.hour
		n := enc.Int(1, 2)
		for k := 0; k < n; k++ {
			if e, ok := Encounter(enc, pack, ectx); ok {
				loc.Encounters[ph.period] = append(loc.Encounters[ph.period], e)
			}
		}
	}

	return loc, true
}

// nameFromParts picks a pattern, draws one value per part pool in stable
// key order, and substitutes.
func nameFromParts(rng *engine.Stream, patterns []string, parts map[string][]string) string {
	if len(patterns) == 0 {
		return ""
	}
	pattern := engine.Pick(rng, patterns)
	vars := map[string]string{}
	for _, key := range sortedKeys(parts) {
		if pool := parts[key]; len(pool) > 0 {
			vars[key] = engine.Pick(rng, pool)
		}
	}
	return Substitute(pattern, vars)
}
