package gen

import (
	"github.com/nathoo/frontiercore/types"
)

// testPack builds a small frontier content pack shared by the generator
// tests.
func testPack() *types.Pack {
	return &types.Pack{
		Name: "test-frontier",
		NamePools: map[string]types.NamePool{
			"settler": {
				Origin:   "settler",
				Male:     []string{"Silas", "Eli", "Wade"},
				Female:   []string{"Mara", "June", "Etta"},
				Neutral:  []string{"Ash", "Rowan"},
				Surnames: []string{"Crane", "Holloway", "Pike"},
				Titles:   []string{"Deputy", "Doc"},
				Patterns: []string{"{{first}} {{last}}", "{{title}} {{last}}"},
			},
		},
		NPCTemplates: []types.NPCTemplate{
			{
				ID:                 "barkeep",
				Role:               "barkeep",
				Weight:             3,
				AllowedFactions:    []string{"settlers"},
				ValidLocationTypes: []string{"town", "outpost"},
				Personality: map[string]types.Range{
					"bravery": {Min: 0.2, Max: 0.6},
					"greed":   {Min: 0.4, Max: 0.9},
				},
				NameOrigins:        []types.Weighted{{Value: "settler", Weight: 1}},
				GenderDistribution: [3]float64{0.45, 0.45, 0.10},
				Backstories:        []string{"{{name}} came west after the war."},
				Descriptions:       []string{"A {{role}} with watchful eyes."},
				QuestGiverChance:   1.0,
				ShopChance:         1.0,
				LevelOffset:        types.IntRange{Min: 0, Max: 2},
			},
			{
				ID:                 "prospector",
				Role:               "prospector",
				Weight:             1,
				AllowedFactions:    []string{"drifters"},
				ValidLocationTypes: []string{"mine"},
				Personality: map[string]types.Range{
					"greed": {Min: 0.7, Max: 1.0},
				},
				NameOrigins:        []types.Weighted{{Value: "settler", Weight: 1}},
				GenderDistribution: [3]float64{0.6, 0.3, 0.1},
				QuestGiverChance:   0,
				ShopChance:         0,
			},
		},
		QuestArchetypes: []types.QuestArchetype{
			{
				ID:                 "clear_vermin",
				Category:           "bounty",
				Weight:             1,
				MinLevel:           1,
				ValidLocationTypes: []string{"town"},
				ValidFactions:      []string{"settlers"},
				Titles:             []string{"Trouble at {{place}}"},
				Descriptions:       []string{"{{giver}} needs {{creature}}s cleared out of {{place}}."},
				Variables: map[string][]string{
					"creature": {"coyote", "rattler"},
					"place":    {"the old mill", "the south ridge"},
				},
				Stages: []types.StageTemplate{
					{
						Title:       "Clear them out",
						Description: "Deal with the {{creature}}s at {{place}}.",
						Objectives: []types.ObjectiveTemplate{
							{Type: types.ObjectiveKill, Target: "{{creature}}", Count: types.IntRange{Min: 3, Max: 6}},
							{Type: types.ObjectiveCollect, Target: "{{creature}} pelt", Count: types.IntRange{Min: 1, Max: 2}, Optional: true},
						},
						RewardXP: types.IntRange{Min: 10, Max: 20},
					},
					{
						Title:       "Report back",
						Description: "Tell {{giver}} the job is done.",
						Objectives: []types.ObjectiveTemplate{
							{Type: types.ObjectiveTalk, Target: "{{giver}}", Count: types.IntRange{Min: 1, Max: 1}},
						},
					},
				},
				RewardXP:   types.IntRange{Min: 30, Max: 50},
				RewardGold: types.IntRange{Min: 15, Max: 25},
			},
		},
		Encounters: []types.EncounterTemplate{
			{
				ID:          "coyote_pack",
				Weight:      2,
				ValidBiomes: []string{"desert", "badlands"},
				ValidTimes:  []string{"night", "evening"},
				Intros:      []string{"Eyes glint in the {{biome}} dark."},
				Slots: []types.EnemySlot{
					{Enemy: "coyote", BaseLevel: 2, Count: types.IntRange{Min: 2, Max: 4}, LevelScale: 1.5},
				},
				RewardXP:   types.IntRange{Min: 5, Max: 8},
				RewardGold: types.IntRange{Min: 1, Max: 3},
			},
			{
				ID:          "bandit_ambush",
				Weight:      1,
				ValidBiomes: []string{"badlands"},
				Slots: []types.EnemySlot{
					{Enemy: "bandit", BaseLevel: 3, Count: types.IntRange{Min: 1, Max: 2}, LevelScale: 1.0},
					{Enemy: "bandit_leader", BaseLevel: 4, Count: types.IntRange{Min: 0, Max: 1}, LevelScale: 2.0},
				},
				RewardXP: types.IntRange{Min: 10, Max: 15},
			},
		},
		Snippets: []types.DialogueSnippet{
			{ID: "greet_any", Slot: SlotGreeting, Weight: 1, Lines: []string{"Howdy, stranger. {{name}}'s the name."}},
			{ID: "greet_back", Slot: SlotReturn, Weight: 1, Lines: []string{"Back again, are you?"}},
			{ID: "talk_any", Slot: SlotSmalltalk, Weight: 1, Lines: []string{"Rail company's been sniffing around."}},
			{ID: "offer_any", Slot: SlotQuestOffer, Weight: 1, Lines: []string{"Got a job, if you're not squeamish."}},
			{ID: "shop_any", Slot: SlotShop, Weight: 1, Lines: []string{"Finest goods this side of the river."}},
			{ID: "bye_any", Slot: SlotFarewell, Weight: 1, Lines: []string{"Watch the trail out there."}},
		},
		Regions: []types.RegionTemplate{
			{
				ID:           "badlands_region",
				Biome:        "badlands",
				Weight:       1,
				NamePatterns: []string{"{{prefix}} {{terrain}}"},
				NameParts: map[string][]string{
					"prefix":  {"Red", "Broken", "Dry"},
					"terrain": {"Mesa", "Flats", "Gulch"},
				},
				LocationCount: types.IntRange{Min: 2, Max: 3},
				Locations: []types.LocationSlot{
					{
						Type:         "town",
						Weight:       2,
						NamePatterns: []string{"{{name}} {{suffix}}"},
						NameParts: map[string][]string{
							"name":   {"Perdition", "Carver's"},
							"suffix": {"Crossing", "Hollow"},
						},
						NPCCount:    types.IntRange{Min: 1, Max: 2},
						DangerLevel: types.Range{Min: 0.1, Max: 0.4},
					},
					{
						Type:        "mine",
						Weight:      1,
						NPCCount:    types.IntRange{Min: 1, Max: 1},
						DangerLevel: types.Range{Min: 0.5, Max: 0.9},
					},
				},
			},
		},
	}
}

func testCtx() types.GenerationContext {
	return types.GenerationContext{
		WorldSeed:    42,
		RegionID:     "region_1",
		LocationID:   "region_1_loc_1",
		LocationType: "town",
		Biome:        "badlands",
		PlayerLevel:  3,
		GameHour:     20,
	}
}
