package loader

import (
	"testing"

	"github.com/nathoo/frontiercore/types"
	lua "github.com/yuin/gopher-lua"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompileNamePool(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		NamePool "settler" {
			male = { "Amos", "Clay" },
			female = { "Ada", "June" },
			neutral = { "Sage" },
			surnames = { "Calloway", "Bennett" },
			titles = { "Deputy" },
			patterns = { "{{first}} {{last}}", "{{title}} {{last}}" }
		}
	`); err != nil {
		t.Fatal(err)
	}

	if len(coll.pools) != 1 {
		t.Fatalf("expected 1 pool, got %d", len(coll.pools))
	}
	pool := compilePool(coll.pools[0])
	if pool.Origin != "settler" {
		t.Errorf("Origin = %q, want settler", pool.Origin)
	}
	if len(pool.Male) != 2 || pool.Male[0] != "Amos" {
		t.Errorf("Male = %v", pool.Male)
	}
	if len(pool.Patterns) != 2 {
		t.Errorf("Patterns = %v", pool.Patterns)
	}
}

func TestCompileNPCTemplate(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		NPCTemplate "barkeep" {
			role = "barkeep",
			weight = 3,
			factions = { "settlers" },
			location_types = { "town", "outpost" },
			personality = {
				bravery = { 0.2, 0.6 },
				greed = 0.5
			},
			name_origins = { settler = 4, drifter = 1 },
			genders = { 0.5, 0.4, 0.1 },
			backstories = { "Poured drinks in {{location}} for years." },
			descriptions = { "A weathered {{role}}." },
			quest_giver_chance = 0.25,
			shop_chance = 1.0,
			level_offset = { 0, 2 }
		}
	`); err != nil {
		t.Fatal(err)
	}

	tmpl := compileNPCTemplate(coll.npcs[0])
	if tmpl.ID != "barkeep" || tmpl.Role != "barkeep" || tmpl.Weight != 3 {
		t.Errorf("template = %+v", tmpl)
	}
	if tmpl.Personality["bravery"] != (types.Range{Min: 0.2, Max: 0.6}) {
		t.Errorf("bravery = %+v", tmpl.Personality["bravery"])
	}
	// Scalar range means a fixed value.
	if tmpl.Personality["greed"] != (types.Range{Min: 0.5, Max: 0.5}) {
		t.Errorf("greed = %+v", tmpl.Personality["greed"])
	}
	// Origins sorted by value for stable generation.
	want := []types.Weighted{{Value: "drifter", Weight: 1}, {Value: "settler", Weight: 4}}
	if len(tmpl.NameOrigins) != 2 || tmpl.NameOrigins[0] != want[0] || tmpl.NameOrigins[1] != want[1] {
		t.Errorf("NameOrigins = %v, want %v", tmpl.NameOrigins, want)
	}
	if tmpl.GenderDistribution != [3]float64{0.5, 0.4, 0.1} {
		t.Errorf("GenderDistribution = %v", tmpl.GenderDistribution)
	}
	if tmpl.LevelOffset != (types.IntRange{Min: 0, Max: 2}) {
		t.Errorf("LevelOffset = %+v", tmpl.LevelOffset)
	}
}

func TestCompileQuestArchetype(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		QuestArchetype "clear_vermin" {
			category = "extermination",
			weight = 2,
			min_level = 1,
			location_types = { "town" },
			factions = { "settlers" },
			titles = { "Trouble at {{place}}" },
			descriptions = { "{{giver}} wants the {{creature}}s gone." },
			variables = {
				creature = { "coyote", "rattler" },
				place = { "the Old Mill" }
			},
			stages = {
				{
					title = "Clear them out",
					description = "Hunt down the {{creature}}s.",
					objectives = {
						{ type = "kill", target = "{{creature}}", count = { 3, 6 } },
						{ type = "collect", target = "{{creature}}_pelt", count = { 1, 2 }, optional = true }
					},
					reward_xp = { 10, 20 }
				},
				{
					title = "Report back",
					objectives = {
						{ type = "talk", target = "{{giver}}", count = 1 }
					}
				}
			},
			reward_xp = { 30, 50 },
			reward_gold = { 15, 25 }
		}
	`); err != nil {
		t.Fatal(err)
	}

	arch, err := compileArchetype(coll.archetypes[0])
	if err != nil {
		t.Fatal(err)
	}
	if arch.Category != "extermination" || arch.MinLevel != 1 {
		t.Errorf("archetype = %+v", arch)
	}
	if len(arch.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(arch.Stages))
	}
	s1 := arch.Stages[0]
	if len(s1.Objectives) != 2 {
		t.Fatalf("stage 1 objectives = %d", len(s1.Objectives))
	}
	if s1.Objectives[0].Type != types.ObjectiveKill || s1.Objectives[0].Count != (types.IntRange{Min: 3, Max: 6}) {
		t.Errorf("objective = %+v", s1.Objectives[0])
	}
	if !s1.Objectives[1].Optional {
		t.Error("second objective should be optional")
	}
	if len(arch.Variables["creature"]) != 2 {
		t.Errorf("variables = %v", arch.Variables)
	}
}

func TestCompileArchetype_NoStagesFails(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		QuestArchetype "empty" { titles = { "Nothing" } }
	`); err != nil {
		t.Fatal(err)
	}
	if _, err := compileArchetype(coll.archetypes[0]); err == nil {
		t.Fatal("expected error for archetype without stages")
	}
}

func TestCompileEncounter(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Encounter "coyote_pack" {
			weight = 3,
			biomes = { "desert", "badlands" },
			times = { "night", "evening" },
			intros = { "Howls rise from the {{biome}}." },
			slots = {
				{ enemy = "coyote", base_level = 2, count = { 2, 4 }, level_scale = 1.5 }
			},
			reward_xp = { 10, 15 }
		}
	`); err != nil {
		t.Fatal(err)
	}

	enc := compileEncounter(coll.encounters[0])
	if enc.ID != "coyote_pack" || len(enc.ValidBiomes) != 2 || len(enc.ValidTimes) != 2 {
		t.Errorf("encounter = %+v", enc)
	}
	if len(enc.Slots) != 1 {
		t.Fatalf("slots = %d", len(enc.Slots))
	}
	slot := enc.Slots[0]
	if slot.Enemy != "coyote" || slot.BaseLevel != 2 || slot.LevelScale != 1.5 {
		t.Errorf("slot = %+v", slot)
	}
}

func TestCompilePriceModifier_ConditionsAndWarnings(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		PriceModifier "drought_water" {
			item_tags = { "provisions" },
			location_types = { "outpost" },
			conditions = {
				EventActive("drought"),
				TensionAbove("railroad", 0.5),
				TensionAbove(0.8),
				{ type = "lunar_phase", phase = "full" }
			},
			multiplier = { 1.5, 2.0 }
		}
	`); err != nil {
		t.Fatal(err)
	}

	mod := compileModifier(coll.modifiers[0], coll)
	if len(mod.Conditions) != 3 {
		t.Fatalf("conditions = %d, want 3 (unknown dropped)", len(mod.Conditions))
	}
	if mod.Conditions[0] != (types.EventActive{Event: "drought"}) {
		t.Errorf("cond[0] = %+v", mod.Conditions[0])
	}
	if mod.Conditions[1] != (types.TensionAbove{Faction: "railroad", Min: 0.5}) {
		t.Errorf("cond[1] = %+v", mod.Conditions[1])
	}
	if mod.Conditions[2] != (types.TensionAbove{Min: 0.8}) {
		t.Errorf("cond[2] = %+v", mod.Conditions[2])
	}
	if len(coll.warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", coll.warnings)
	}
}

func TestCompileDialogueTree(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Dialogue "dlg_sheriff" {
			npc = "npc_sheriff",
			entries = {
				{ node = "urgent", priority = 10, conditions = { FlagSet("bank_robbed") } },
				{ node = "greeting", priority = 0 }
			},
			nodes = {
				greeting = {
					speaker = "Sheriff",
					text = "Keep your nose clean.",
					on_enter = { SetFlag("met_sheriff") },
					choices = {
						{ text = "(leave)", next = "" }
					}
				},
				urgent = {
					speaker = "Sheriff",
					text = "The bank's been hit!",
					choices = {
						{
							text = "I'll track them down.",
							next = "greeting",
							conditions = { QuestIs("bank_job", "available"), GoldAtLeast(10) },
							effects = { StartQuest("bank_job"), ChangeRep("settlers", 2) }
						}
					}
				}
			}
		}
	`); err != nil {
		t.Fatal(err)
	}

	tree, err := compileTree(coll.trees[0])
	if err != nil {
		t.Fatal(err)
	}
	if tree.NPCID != "npc_sheriff" || len(tree.Entries) != 2 || len(tree.Nodes) != 2 {
		t.Fatalf("tree = %+v", tree)
	}
	if tree.Entries[0].Priority != 10 || len(tree.Entries[0].Conditions) != 1 {
		t.Errorf("entry = %+v", tree.Entries[0])
	}
	greeting := tree.Nodes["greeting"]
	if len(greeting.OnEnter) != 1 {
		t.Fatalf("greeting OnEnter = %v", greeting.OnEnter)
	}
	if greeting.OnEnter[0] != (types.SetFlag{Flag: "met_sheriff"}) {
		t.Errorf("OnEnter[0] = %+v", greeting.OnEnter[0])
	}
	urgent := tree.Nodes["urgent"]
	if len(urgent.Choices) != 1 {
		t.Fatalf("urgent choices = %d", len(urgent.Choices))
	}
	choice := urgent.Choices[0]
	if choice.NextNodeID != "greeting" {
		t.Errorf("next = %q", choice.NextNodeID)
	}
	if choice.Conditions[0] != (types.QuestStateIs{QuestID: "bank_job", Status: types.QuestAvailable}) {
		t.Errorf("cond[0] = %+v", choice.Conditions[0])
	}
	if choice.Effects[1] != (types.ChangeReputation{Faction: "settlers", Delta: 2}) {
		t.Errorf("eff[1] = %+v", choice.Effects[1])
	}
}

func TestCondFromMap_UnknownTypeFails(t *testing.T) {
	if _, err := condFromMap(map[string]any{"type": "moon_phase"}); err == nil {
		t.Fatal("expected error for unknown condition type")
	}
	if _, err := effectFromMap(map[string]any{"type": "explode"}); err == nil {
		t.Fatal("expected error for unknown effect type")
	}
}

func TestCompileRegion(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Region "badlands_region" {
			biome = "badlands",
			weight = 2,
			name_patterns = { "{{prefix}} {{terrain}}" },
			name_parts = {
				prefix = { "Red", "Broken" },
				terrain = { "Mesa", "Flats" }
			},
			location_count = { 2, 4 },
			locations = {
				{
					type = "town",
					weight = 3,
					name_patterns = { "{{name}} Gulch" },
					name_parts = { name = { "Dry", "Coyote" } },
					npc_count = { 2, 5 },
					danger = { 0.1, 0.4 }
				}
			}
		}
	`); err != nil {
		t.Fatal(err)
	}

	region := compileRegion(coll.regions[0])
	if region.Biome != "badlands" || region.LocationCount != (types.IntRange{Min: 2, Max: 4}) {
		t.Errorf("region = %+v", region)
	}
	if len(region.NameParts["prefix"]) != 2 {
		t.Errorf("name_parts = %v", region.NameParts)
	}
	if len(region.Locations) != 1 || region.Locations[0].Type != "town" {
		t.Fatalf("locations = %+v", region.Locations)
	}
	if region.Locations[0].DangerLevel != (types.Range{Min: 0.1, Max: 0.4}) {
		t.Errorf("danger = %+v", region.Locations[0].DangerLevel)
	}
}
