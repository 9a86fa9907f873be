// Package loader loads Lua and YAML content packs into Go structs at
// startup. The Lua VM is discarded after loading; zero Lua at runtime.
package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/frontiercore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawPool holds a name pool table before compilation.
type rawPool struct {
	origin string
	table  *lua.LTable
}

// rawDef holds any other curried definition before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// sortWeighted orders weighted entries by value so that packs decoded
// from unordered tables and mappings generate identically.
func sortWeighted(items []types.Weighted) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Value < items[j].Value
	})
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// toGoValue converts a Lua value to a Go value recursively.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		// Sequential integer keys starting at 1 make an array.
		maxN := val.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}

// stringSlice returns a list field as []string, skipping non-strings.
func stringSlice(tbl *lua.LTable, key string) []string {
	lst := getTable(tbl, key)
	if lst == nil {
		return nil
	}
	var out []string
	for i := 1; i <= lst.MaxN(); i++ {
		if s, ok := lst.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// getRange reads a {min, max} pair; a single number means a fixed value.
func getRange(tbl *lua.LTable, key string) types.Range {
	v := tbl.RawGetString(key)
	switch val := v.(type) {
	case lua.LNumber:
		f := float64(val)
		return types.Range{Min: f, Max: f}
	case *lua.LTable:
		lo, _ := val.RawGetInt(1).(lua.LNumber)
		hi, _ := val.RawGetInt(2).(lua.LNumber)
		return types.Range{Min: float64(lo), Max: float64(hi)}
	}
	return types.Range{}
}

// getIntRange reads a {min, max} pair as an IntRange.
func getIntRange(tbl *lua.LTable, key string) types.IntRange {
	r := getRange(tbl, key)
	return types.IntRange{Min: int(r.Min), Max: int(r.Max)}
}

// compile converts all collected Lua data into a Pack.
func compile(coll *collector) (*types.Pack, error) {
	pack := &types.Pack{
		NamePools: map[string]types.NamePool{},
		Trees:     map[string]types.DialogueTree{},
	}

	if coll.pack != nil {
		pack.Name = getString(coll.pack, "name")
		pack.Version = getString(coll.pack, "version")
		pack.Author = getString(coll.pack, "author")
	}

	for _, raw := range coll.pools {
		pack.NamePools[raw.origin] = compilePool(raw)
	}
	for _, raw := range coll.npcs {
		pack.NPCTemplates = append(pack.NPCTemplates, compileNPCTemplate(raw))
	}
	for _, raw := range coll.archetypes {
		arch, err := compileArchetype(raw)
		if err != nil {
			return nil, fmt.Errorf("quest archetype %s: %w", raw.id, err)
		}
		pack.QuestArchetypes = append(pack.QuestArchetypes, arch)
	}
	for _, raw := range coll.encounters {
		pack.Encounters = append(pack.Encounters, compileEncounter(raw))
	}
	for _, raw := range coll.snippets {
		pack.Snippets = append(pack.Snippets, compileSnippet(raw))
	}
	for _, raw := range coll.modifiers {
		pack.PriceModifiers = append(pack.PriceModifiers, compileModifier(raw, coll))
	}
	for _, raw := range coll.regions {
		pack.Regions = append(pack.Regions, compileRegion(raw))
	}
	for _, raw := range coll.trees {
		tree, err := compileTree(raw)
		if err != nil {
			return nil, fmt.Errorf("dialogue %s: %w", raw.id, err)
		}
		pack.Trees[raw.id] = tree
	}

	return pack, nil
}

func compilePool(raw rawPool) types.NamePool {
	tbl := raw.table
	return types.NamePool{
		Origin:   raw.origin,
		Male:     stringSlice(tbl, "male"),
		Female:   stringSlice(tbl, "female"),
		Neutral:  stringSlice(tbl, "neutral"),
		Surnames: stringSlice(tbl, "surnames"),
		Titles:   stringSlice(tbl, "titles"),
		Patterns: stringSlice(tbl, "patterns"),
	}
}

func compileNPCTemplate(raw rawDef) types.NPCTemplate {
	tbl := raw.table
	t := types.NPCTemplate{
		ID:                 raw.id,
		Role:               getString(tbl, "role"),
		Weight:             getInt(tbl, "weight"),
		AllowedFactions:    stringSlice(tbl, "factions"),
		ValidLocationTypes: stringSlice(tbl, "location_types"),
		Backstories:        stringSlice(tbl, "backstories"),
		Descriptions:       stringSlice(tbl, "descriptions"),
		QuestGiverChance:   getNumber(tbl, "quest_giver_chance"),
		ShopChance:         getNumber(tbl, "shop_chance"),
		LevelOffset:        getIntRange(tbl, "level_offset"),
	}

	if traits := getTable(tbl, "personality"); traits != nil {
		t.Personality = map[string]types.Range{}
		traits.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				t.Personality[string(ks)] = getRange(traits, string(ks))
			}
		})
	}

	if origins := getTable(tbl, "name_origins"); origins != nil {
		origins.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				w, _ := v.(lua.LNumber)
				t.NameOrigins = append(t.NameOrigins, types.Weighted{
					Value: string(ks), Weight: int(w),
				})
			}
		})
		// Lua table iteration order is unspecified; keep origins stable.
		sortWeighted(t.NameOrigins)
	}

	if dist := getTable(tbl, "genders"); dist != nil {
		m, _ := dist.RawGetInt(1).(lua.LNumber)
		f, _ := dist.RawGetInt(2).(lua.LNumber)
		n, _ := dist.RawGetInt(3).(lua.LNumber)
		t.GenderDistribution = [3]float64{float64(m), float64(f), float64(n)}
	}

	return t
}

func compileArchetype(raw rawDef) (types.QuestArchetype, error) {
	tbl := raw.table
	arch := types.QuestArchetype{
		ID:                 raw.id,
		Category:           getString(tbl, "category"),
		Weight:             getInt(tbl, "weight"),
		MinLevel:           getInt(tbl, "min_level"),
		ValidLocationTypes: stringSlice(tbl, "location_types"),
		ValidFactions:      stringSlice(tbl, "factions"),
		Titles:             stringSlice(tbl, "titles"),
		Descriptions:       stringSlice(tbl, "descriptions"),
		RewardXP:           getIntRange(tbl, "reward_xp"),
		RewardGold:         getIntRange(tbl, "reward_gold"),
	}

	if vars := getTable(tbl, "variables"); vars != nil {
		arch.Variables = map[string][]string{}
		vars.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				arch.Variables[string(ks)] = stringSlice(vars, string(ks))
			}
		})
	}

	stages := getTable(tbl, "stages")
	if stages == nil || stages.MaxN() == 0 {
		return arch, fmt.Errorf("no stages defined")
	}
	for i := 1; i <= stages.MaxN(); i++ {
		stageTbl, ok := stages.RawGetInt(i).(*lua.LTable)
		if !ok {
			return arch, fmt.Errorf("stage %d is not a table", i)
		}
		arch.Stages = append(arch.Stages, compileStage(stageTbl))
	}

	return arch, nil
}

func compileStage(tbl *lua.LTable) types.StageTemplate {
	stage := types.StageTemplate{
		Title:       getString(tbl, "title"),
		Description: getString(tbl, "description"),
		RewardXP:    getIntRange(tbl, "reward_xp"),
		RewardGold:  getIntRange(tbl, "reward_gold"),
	}
	if objs := getTable(tbl, "objectives"); objs != nil {
		for i := 1; i <= objs.MaxN(); i++ {
			if objTbl, ok := objs.RawGetInt(i).(*lua.LTable); ok {
				stage.Objectives = append(stage.Objectives, types.ObjectiveTemplate{
					Type:     types.ObjectiveType(getString(objTbl, "type")),
					Target:   getString(objTbl, "target"),
					Count:    getIntRange(objTbl, "count"),
					Optional: getBool(objTbl, "optional", false),
				})
			}
		}
	}
	return stage
}

func compileEncounter(raw rawDef) types.EncounterTemplate {
	tbl := raw.table
	enc := types.EncounterTemplate{
		ID:          raw.id,
		Weight:      getInt(tbl, "weight"),
		ValidBiomes: stringSlice(tbl, "biomes"),
		ValidTimes:  stringSlice(tbl, "times"),
		Intros:      stringSlice(tbl, "intros"),
		RewardXP:    getIntRange(tbl, "reward_xp"),
		RewardGold:  getIntRange(tbl, "reward_gold"),
	}
	if slots := getTable(tbl, "slots"); slots != nil {
		for i := 1; i <= slots.MaxN(); i++ {
			if slotTbl, ok := slots.RawGetInt(i).(*lua.LTable); ok {
				enc.Slots = append(enc.Slots, types.EnemySlot{
					Enemy:      getString(slotTbl, "enemy"),
					BaseLevel:  getInt(slotTbl, "base_level"),
					Count:      getIntRange(slotTbl, "count"),
					LevelScale: getNumber(slotTbl, "level_scale"),
				})
			}
		}
	}
	return enc
}

func compileSnippet(raw rawDef) types.DialogueSnippet {
	tbl := raw.table
	return types.DialogueSnippet{
		ID:     raw.id,
		Slot:   getString(tbl, "slot"),
		Roles:  stringSlice(tbl, "roles"),
		Weight: getInt(tbl, "weight"),
		Lines:  stringSlice(tbl, "lines"),
	}
}

func compileModifier(raw rawDef, coll *collector) types.PriceModifier {
	tbl := raw.table
	mod := types.PriceModifier{
		ID:            raw.id,
		ItemTags:      stringSlice(tbl, "item_tags"),
		LocationTypes: stringSlice(tbl, "location_types"),
		Regions:       stringSlice(tbl, "regions"),
		Multiplier:    getRange(tbl, "multiplier"),
	}
	if conds := getTable(tbl, "conditions"); conds != nil {
		for i := 1; i <= conds.MaxN(); i++ {
			m, ok := toGoValue(conds.RawGetInt(i)).(map[string]any)
			if !ok {
				continue
			}
			c, err := priceCondFromMap(m)
			if err != nil {
				coll.warnf("price modifier %s: %v, condition dropped", raw.id, err)
				continue
			}
			mod.Conditions = append(mod.Conditions, c)
		}
	}
	return mod
}

func compileRegion(raw rawDef) types.RegionTemplate {
	tbl := raw.table
	region := types.RegionTemplate{
		ID:            raw.id,
		Biome:         getString(tbl, "biome"),
		Weight:        getInt(tbl, "weight"),
		NamePatterns:  stringSlice(tbl, "name_patterns"),
		NameParts:     namePartsMap(getTable(tbl, "name_parts")),
		LocationCount: getIntRange(tbl, "location_count"),
	}
	if locs := getTable(tbl, "locations"); locs != nil {
		for i := 1; i <= locs.MaxN(); i++ {
			if locTbl, ok := locs.RawGetInt(i).(*lua.LTable); ok {
				region.Locations = append(region.Locations, types.LocationSlot{
					Type:         getString(locTbl, "type"),
					Weight:       getInt(locTbl, "weight"),
					NamePatterns: stringSlice(locTbl, "name_patterns"),
					NameParts:    namePartsMap(getTable(locTbl, "name_parts")),
					NPCCount:     getIntRange(locTbl, "npc_count"),
					DangerLevel:  getRange(locTbl, "danger"),
				})
			}
		}
	}
	return region
}

func namePartsMap(tbl *lua.LTable) map[string][]string {
	if tbl == nil {
		return nil
	}
	m := map[string][]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			m[string(ks)] = stringSlice(tbl, string(ks))
		}
	})
	return m
}

func compileTree(raw rawDef) (types.DialogueTree, error) {
	tbl := raw.table
	tree := types.DialogueTree{
		ID:    raw.id,
		NPCID: getString(tbl, "npc"),
		Nodes: map[string]types.DialogueNode{},
	}

	if entries := getTable(tbl, "entries"); entries != nil {
		for i := 1; i <= entries.MaxN(); i++ {
			entryTbl, ok := entries.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			entry := types.EntryPoint{
				NodeID:   getString(entryTbl, "node"),
				Priority: getInt(entryTbl, "priority"),
			}
			conds, err := condList(getTable(entryTbl, "conditions"))
			if err != nil {
				return tree, fmt.Errorf("entry %d: %w", i, err)
			}
			entry.Conditions = conds
			tree.Entries = append(tree.Entries, entry)
		}
	}

	nodes := getTable(tbl, "nodes")
	if nodes == nil {
		return tree, fmt.Errorf("no nodes defined")
	}
	var nodeErr error
	nodes.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok || nodeErr != nil {
			return
		}
		nodeTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		node, err := compileNode(string(ks), nodeTbl)
		if err != nil {
			nodeErr = fmt.Errorf("node %s: %w", string(ks), err)
			return
		}
		tree.Nodes[string(ks)] = node
	})
	return tree, nodeErr
}

func compileNode(id string, tbl *lua.LTable) (types.DialogueNode, error) {
	node := types.DialogueNode{
		ID:      id,
		Speaker: getString(tbl, "speaker"),
		Text:    getString(tbl, "text"),
	}

	effects, err := effectList(getTable(tbl, "on_enter"))
	if err != nil {
		return node, err
	}
	node.OnEnter = effects

	if choices := getTable(tbl, "choices"); choices != nil {
		for i := 1; i <= choices.MaxN(); i++ {
			choiceTbl, ok := choices.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			choice := types.Choice{
				Text:       getString(choiceTbl, "text"),
				NextNodeID: getString(choiceTbl, "next"),
			}
			if choice.Conditions, err = condList(getTable(choiceTbl, "conditions")); err != nil {
				return node, fmt.Errorf("choice %d: %w", i, err)
			}
			if choice.Effects, err = effectList(getTable(choiceTbl, "effects")); err != nil {
				return node, fmt.Errorf("choice %d: %w", i, err)
			}
			node.Choices = append(node.Choices, choice)
		}
	}
	return node, nil
}

func condList(tbl *lua.LTable) ([]types.Condition, error) {
	if tbl == nil {
		return nil, nil
	}
	var out []types.Condition
	for i := 1; i <= tbl.MaxN(); i++ {
		m, ok := toGoValue(tbl.RawGetInt(i)).(map[string]any)
		if !ok {
			continue
		}
		c, err := condFromMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func effectList(tbl *lua.LTable) ([]types.Effect, error) {
	if tbl == nil {
		return nil, nil
	}
	var out []types.Effect
	for i := 1; i <= tbl.MaxN(); i++ {
		m, ok := toGoValue(tbl.RawGetInt(i)).(map[string]any)
		if !ok {
			continue
		}
		e, err := effectFromMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// mapString/mapInt/mapFloat read loosely-typed fields from decoded Lua
// tables and YAML mappings alike.
func mapString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func mapInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func mapFloat(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// condFromMap builds a dialogue condition from a {type: ..., ...} map.
// The condition set is closed: unknown types are load errors.
func condFromMap(m map[string]any) (types.Condition, error) {
	switch t := mapString(m, "type"); t {
	case "quest_is":
		return types.QuestStateIs{
			QuestID: mapString(m, "quest"),
			Status:  types.QuestStatus(mapString(m, "status")),
		}, nil
	case "has_item":
		return types.HasItem{ItemID: mapString(m, "item"), Count: mapInt(m, "count")}, nil
	case "rep_at_least":
		return types.ReputationAtLeast{Faction: mapString(m, "faction"), Min: mapInt(m, "min")}, nil
	case "gold_at_least":
		return types.GoldAtLeast{Min: mapInt(m, "min")}, nil
	case "talked_to":
		return types.HasTalkedTo{NPCID: mapString(m, "npc")}, nil
	case "time_is":
		return types.TimeOfDayIs{Period: mapString(m, "period")}, nil
	case "flag_set":
		return types.FlagSet{Flag: mapString(m, "flag")}, nil
	case "flag_not":
		return types.FlagNotSet{Flag: mapString(m, "flag")}, nil
	case "first_visit":
		return types.FirstVisit{}, nil
	case "return_visit":
		return types.ReturnVisit{}, nil
	default:
		return nil, fmt.Errorf("unknown condition type %q", t)
	}
}

// effectFromMap builds an effect from a {type: ..., ...} map. The effect
// set is closed: unknown types are load errors.
func effectFromMap(m map[string]any) (types.Effect, error) {
	switch t := mapString(m, "type"); t {
	case "start_quest":
		return types.StartQuest{QuestID: mapString(m, "quest")}, nil
	case "advance_quest":
		return types.AdvanceQuest{QuestID: mapString(m, "quest")}, nil
	case "complete_quest":
		return types.CompleteQuest{QuestID: mapString(m, "quest")}, nil
	case "give_item":
		return types.GiveItem{ItemID: mapString(m, "item"), Count: mapInt(m, "count")}, nil
	case "take_item":
		return types.TakeItem{ItemID: mapString(m, "item"), Count: mapInt(m, "count")}, nil
	case "give_gold":
		return types.GiveGold{Amount: mapInt(m, "amount")}, nil
	case "take_gold":
		return types.TakeGold{Amount: mapInt(m, "amount")}, nil
	case "change_rep":
		return types.ChangeReputation{Faction: mapString(m, "faction"), Delta: mapInt(m, "delta")}, nil
	case "set_flag":
		return types.SetFlag{Flag: mapString(m, "flag")}, nil
	case "clear_flag":
		return types.ClearFlag{Flag: mapString(m, "flag")}, nil
	case "unlock_location":
		return types.UnlockLocation{LocationID: mapString(m, "location")}, nil
	case "npc_state":
		return types.ChangeNPCState{NPCID: mapString(m, "npc"), State: mapString(m, "state")}, nil
	case "trigger_event":
		return types.TriggerEvent{Event: mapString(m, "event")}, nil
	case "open_shop":
		return types.OpenShop{NPCID: mapString(m, "npc")}, nil
	default:
		return nil, fmt.Errorf("unknown effect type %q", t)
	}
}

// priceCondFromMap builds a pricing condition. Unlike dialogue conditions,
// unknown types are reported to the caller so the modifier loads without
// the condition (a missing predicate must never veto a modifier).
func priceCondFromMap(m map[string]any) (types.PriceCondition, error) {
	switch t := mapString(m, "type"); t {
	case "event_active":
		return types.EventActive{Event: mapString(m, "event")}, nil
	case "season_is":
		return types.SeasonIs{Season: mapString(m, "season")}, nil
	case "population_below":
		return types.PopulationBelow{Max: mapInt(m, "max")}, nil
	case "danger_above":
		return types.DangerAbove{Min: mapFloat(m, "min")}, nil
	case "tension_above":
		return types.TensionAbove{Faction: mapString(m, "faction"), Min: mapFloat(m, "min")}, nil
	case "has_feature":
		return types.HasFeature{Feature: mapString(m, "feature")}, nil
	default:
		return nil, fmt.Errorf("unknown price condition type %q", t)
	}
}
