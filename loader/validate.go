package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/engine/dialogue"
	"github.com/nathoo/frontiercore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validObjectiveTypes = map[types.ObjectiveType]bool{
	types.ObjectiveKill:     true,
	types.ObjectiveCollect:  true,
	types.ObjectiveTalk:     true,
	types.ObjectiveVisit:    true,
	types.ObjectiveInteract: true,
	types.ObjectiveDeliver:  true,
}

var validPeriods = map[string]bool{
	engine.PeriodMorning: true,
	engine.PeriodDay:     true,
	engine.PeriodEvening: true,
	engine.PeriodNight:   true,
}

// validate checks the compiled pack for referential integrity and
// consistency. Warnings (including any accumulated while compiling) go
// to stderr; errors fail the load.
func validate(pack *types.Pack, warnings []string) error {
	ve := &ValidationError{Warnings: warnings}

	if pack.Name == "" {
		ve.Errors = append(ve.Errors, "Pack.name is required")
	}

	seen := map[string]bool{}
	dupCheck := func(kind, id string) {
		key := kind + ":" + id
		if seen[key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate %s ID %q", kind, id))
		}
		seen[key] = true
	}

	for _, t := range pack.NPCTemplates {
		dupCheck("NPC template", t.ID)
		validateNPCTemplate(t, pack, ve)
	}
	for _, a := range pack.QuestArchetypes {
		dupCheck("quest archetype", a.ID)
		validateArchetype(a, ve)
	}
	for _, e := range pack.Encounters {
		dupCheck("encounter", e.ID)
		validateEncounter(e, ve)
	}
	for _, s := range pack.Snippets {
		dupCheck("snippet", s.ID)
		if len(s.Lines) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("snippet %q has no lines", s.ID))
		}
	}
	for _, m := range pack.PriceModifiers {
		dupCheck("price modifier", m.ID)
		if m.Multiplier.Min > m.Multiplier.Max {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"price modifier %q multiplier range is inverted", m.ID))
		}
		if m.Multiplier.Min <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"price modifier %q multiplier must be positive", m.ID))
		}
	}
	for _, r := range pack.Regions {
		dupCheck("region", r.ID)
		validateRegion(r, ve)
	}

	for _, id := range sortedTreeIDs(pack.Trees) {
		tree := pack.Trees[id]
		for _, w := range dialogue.CheckTree(&tree) {
			// Dangling references break traversal; everything else is
			// authoring advice.
			if strings.Contains(w, "missing node") {
				ve.Errors = append(ve.Errors, w)
			} else {
				ve.Warnings = append(ve.Warnings, w)
			}
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateNPCTemplate(t types.NPCTemplate, pack *types.Pack, ve *ValidationError) {
	if t.Weight < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("NPC template %q has negative weight", t.ID))
	}
	if t.QuestGiverChance < 0 || t.QuestGiverChance > 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"NPC template %q quest_giver_chance %.2f outside [0,1]", t.ID, t.QuestGiverChance))
	}
	if t.ShopChance < 0 || t.ShopChance > 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"NPC template %q shop_chance %.2f outside [0,1]", t.ID, t.ShopChance))
	}
	if t.LevelOffset.Min > t.LevelOffset.Max {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"NPC template %q level_offset range is inverted", t.ID))
	}

	for trait, r := range t.Personality {
		if r.Min > r.Max {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"NPC template %q trait %q range is inverted", t.ID, trait))
		}
		if r.Min < 0 || r.Max > 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"NPC template %q trait %q range outside [0,1]", t.ID, trait))
		}
	}

	sum := t.GenderDistribution[0] + t.GenderDistribution[1] + t.GenderDistribution[2]
	if sum != 0 && (sum < 0.99 || sum > 1.01) {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"NPC template %q gender distribution sums to %.2f, want 1", t.ID, sum))
	}

	for _, origin := range t.NameOrigins {
		if _, ok := pack.NamePools[origin.Value]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"NPC template %q references undefined name pool %q", t.ID, origin.Value))
		}
	}
}

func validateArchetype(a types.QuestArchetype, ve *ValidationError) {
	if len(a.Stages) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("quest archetype %q has no stages", a.ID))
	}
	if len(a.Titles) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("quest archetype %q has no titles", a.ID))
	}
	checkIntRange := func(what string, r types.IntRange) {
		if r.Min > r.Max {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"quest archetype %q %s range is inverted", a.ID, what))
		}
	}
	checkIntRange("reward_xp", a.RewardXP)
	checkIntRange("reward_gold", a.RewardGold)

	for i, stage := range a.Stages {
		if len(stage.Objectives) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"quest archetype %q stage %d has no objectives", a.ID, i+1))
		}
		for j, obj := range stage.Objectives {
			if !validObjectiveTypes[obj.Type] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest archetype %q stage %d objective %d has unknown type %q",
					a.ID, i+1, j+1, obj.Type))
			}
			if obj.Count.Min > obj.Count.Max {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest archetype %q stage %d objective %d count range is inverted",
					a.ID, i+1, j+1))
			}
		}
	}
}

func validateEncounter(e types.EncounterTemplate, ve *ValidationError) {
	for _, period := range e.ValidTimes {
		if !validPeriods[period] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"encounter %q has unknown time period %q", e.ID, period))
		}
	}
	if len(e.Intros) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("encounter %q has no intros", e.ID))
	}
	if len(e.Slots) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("encounter %q has no enemy slots", e.ID))
	}
	for i, slot := range e.Slots {
		if slot.Count.Min > slot.Count.Max {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"encounter %q slot %d count range is inverted", e.ID, i+1))
		}
		if slot.LevelScale < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"encounter %q slot %d has negative level scale", e.ID, i+1))
		}
	}
}

func validateRegion(r types.RegionTemplate, ve *ValidationError) {
	if r.LocationCount.Min > r.LocationCount.Max {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"region %q location_count range is inverted", r.ID))
	}
	if len(r.Locations) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("region %q has no location slots", r.ID))
	}
	for i, slot := range r.Locations {
		if slot.Type == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"region %q location slot %d has no type", r.ID, i+1))
		}
		if slot.DangerLevel.Min > slot.DangerLevel.Max {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"region %q location slot %d danger range is inverted", r.ID, i+1))
		}
	}
}

func sortedTreeIDs(trees map[string]types.DialogueTree) []string {
	ids := make([]string, 0, len(trees))
	for id := range trees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
