package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerEffectHelpers(L)
	registerPriceConditionHelpers(L)
}

// curried registers Name "id" { ... } constructors: the global takes the
// id string and returns a closure that takes the definition table.
func curried(L *lua.LState, name string, sink func(id string, tbl *lua.LTable)) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			sink(id, tbl)
			return 0
		}))
		return 1
	}))
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Pack { name = "...", version = "...", author = "..." }
	L.SetGlobal("Pack", L.NewFunction(func(L *lua.LState) int {
		coll.pack = L.CheckTable(1)
		return 0
	}))

	// NamePool "origin" { male = {...}, female = {...}, ... }
	curried(L, "NamePool", func(id string, tbl *lua.LTable) {
		coll.pools = append(coll.pools, rawPool{origin: id, table: tbl})
	})

	// NPCTemplate "id" { role = "...", weight = 3, ... }
	curried(L, "NPCTemplate", func(id string, tbl *lua.LTable) {
		coll.npcs = append(coll.npcs, rawDef{id: id, table: tbl})
	})

	// QuestArchetype "id" { category = "...", stages = {...}, ... }
	curried(L, "QuestArchetype", func(id string, tbl *lua.LTable) {
		coll.archetypes = append(coll.archetypes, rawDef{id: id, table: tbl})
	})

	// Encounter "id" { biomes = {...}, slots = {...}, ... }
	curried(L, "Encounter", func(id string, tbl *lua.LTable) {
		coll.encounters = append(coll.encounters, rawDef{id: id, table: tbl})
	})

	// Snippet "id" { slot = "greeting", lines = {...}, ... }
	curried(L, "Snippet", func(id string, tbl *lua.LTable) {
		coll.snippets = append(coll.snippets, rawDef{id: id, table: tbl})
	})

	// PriceModifier "id" { item_tags = {...}, multiplier = {1.2, 1.4}, ... }
	curried(L, "PriceModifier", func(id string, tbl *lua.LTable) {
		coll.modifiers = append(coll.modifiers, rawDef{id: id, table: tbl})
	})

	// Region "id" { biome = "...", locations = {...}, ... }
	curried(L, "Region", func(id string, tbl *lua.LTable) {
		coll.regions = append(coll.regions, rawDef{id: id, table: tbl})
	})

	// Dialogue "id" { npc = "...", entries = {...}, nodes = {...} }:
	// hand-authored trees layered on top of the generated ones.
	curried(L, "Dialogue", func(id string, tbl *lua.LTable) {
		coll.trees = append(coll.trees, rawDef{id: id, table: tbl})
	})
}

// tagged builds a {type = t, ...fields} table for condition and effect
// helpers.
func tagged(L *lua.LState, t string, fields map[string]lua.LValue) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("type", lua.LString(t))
	for k, v := range fields {
		tbl.RawSetString(k, v)
	}
	return tbl
}

func registerConditionHelpers(L *lua.LState) {
	// QuestIs("quest_id", "active")
	L.SetGlobal("QuestIs", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "quest_is", map[string]lua.LValue{
			"quest":  lua.LString(L.CheckString(1)),
			"status": lua.LString(L.CheckString(2)),
		}))
		return 1
	}))

	// HasItem("item_id", count); count optional, default 1.
	L.SetGlobal("HasItem", L.NewFunction(func(L *lua.LState) int {
		fields := map[string]lua.LValue{"item": lua.LString(L.CheckString(1))}
		if L.GetTop() >= 2 {
			fields["count"] = L.CheckNumber(2)
		}
		L.Push(tagged(L, "has_item", fields))
		return 1
	}))

	// RepAtLeast("faction", min)
	L.SetGlobal("RepAtLeast", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "rep_at_least", map[string]lua.LValue{
			"faction": lua.LString(L.CheckString(1)),
			"min":     L.CheckNumber(2),
		}))
		return 1
	}))

	// GoldAtLeast(min)
	L.SetGlobal("GoldAtLeast", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "gold_at_least", map[string]lua.LValue{
			"min": L.CheckNumber(1),
		}))
		return 1
	}))

	// TalkedTo("npc_id")
	L.SetGlobal("TalkedTo", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "talked_to", map[string]lua.LValue{
			"npc": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// TimeIs("night")
	L.SetGlobal("TimeIs", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "time_is", map[string]lua.LValue{
			"period": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// FlagSet("flag")
	L.SetGlobal("FlagSet", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "flag_set", map[string]lua.LValue{
			"flag": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// FlagNot("flag")
	L.SetGlobal("FlagNot", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "flag_not", map[string]lua.LValue{
			"flag": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// FirstVisit()
	L.SetGlobal("FirstVisit", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "first_visit", nil))
		return 1
	}))

	// ReturnVisit()
	L.SetGlobal("ReturnVisit", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "return_visit", nil))
		return 1
	}))
}

func registerEffectHelpers(L *lua.LState) {
	questEffect := func(t string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			L.Push(tagged(L, t, map[string]lua.LValue{
				"quest": lua.LString(L.CheckString(1)),
			}))
			return 1
		})
	}
	L.SetGlobal("StartQuest", questEffect("start_quest"))
	L.SetGlobal("AdvanceQuest", questEffect("advance_quest"))
	L.SetGlobal("CompleteQuest", questEffect("complete_quest"))

	// GiveItem("id", count) / TakeItem("id", count); count optional.
	itemEffect := func(t string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			fields := map[string]lua.LValue{"item": lua.LString(L.CheckString(1))}
			if L.GetTop() >= 2 {
				fields["count"] = L.CheckNumber(2)
			}
			L.Push(tagged(L, t, fields))
			return 1
		})
	}
	L.SetGlobal("GiveItem", itemEffect("give_item"))
	L.SetGlobal("TakeItem", itemEffect("take_item"))

	goldEffect := func(t string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			L.Push(tagged(L, t, map[string]lua.LValue{
				"amount": L.CheckNumber(1),
			}))
			return 1
		})
	}
	L.SetGlobal("GiveGold", goldEffect("give_gold"))
	L.SetGlobal("TakeGold", goldEffect("take_gold"))

	// ChangeRep("faction", delta)
	L.SetGlobal("ChangeRep", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "change_rep", map[string]lua.LValue{
			"faction": lua.LString(L.CheckString(1)),
			"delta":   L.CheckNumber(2),
		}))
		return 1
	}))

	// SetFlag("flag") / ClearFlag("flag")
	flagEffect := func(t string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			L.Push(tagged(L, t, map[string]lua.LValue{
				"flag": lua.LString(L.CheckString(1)),
			}))
			return 1
		})
	}
	L.SetGlobal("SetFlag", flagEffect("set_flag"))
	L.SetGlobal("ClearFlag", flagEffect("clear_flag"))

	// UnlockLocation("location_id")
	L.SetGlobal("UnlockLocation", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "unlock_location", map[string]lua.LValue{
			"location": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// NPCState("npc_id", "hostile")
	L.SetGlobal("NPCState", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "npc_state", map[string]lua.LValue{
			"npc":   lua.LString(L.CheckString(1)),
			"state": lua.LString(L.CheckString(2)),
		}))
		return 1
	}))

	// TriggerEvent("event")
	L.SetGlobal("TriggerEvent", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "trigger_event", map[string]lua.LValue{
			"event": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// OpenShop("npc_id")
	L.SetGlobal("OpenShop", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "open_shop", map[string]lua.LValue{
			"npc": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))
}

func registerPriceConditionHelpers(L *lua.LState) {
	// EventActive("drought")
	L.SetGlobal("EventActive", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "event_active", map[string]lua.LValue{
			"event": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// SeasonIs("winter")
	L.SetGlobal("SeasonIs", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "season_is", map[string]lua.LValue{
			"season": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))

	// PopulationBelow(max)
	L.SetGlobal("PopulationBelow", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "population_below", map[string]lua.LValue{
			"max": L.CheckNumber(1),
		}))
		return 1
	}))

	// DangerAbove(min)
	L.SetGlobal("DangerAbove", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "danger_above", map[string]lua.LValue{
			"min": L.CheckNumber(1),
		}))
		return 1
	}))

	// TensionAbove("faction", min) or TensionAbove(min) for any faction.
	L.SetGlobal("TensionAbove", L.NewFunction(func(L *lua.LState) int {
		fields := map[string]lua.LValue{}
		if L.GetTop() >= 2 {
			fields["faction"] = lua.LString(L.CheckString(1))
			fields["min"] = L.CheckNumber(2)
		} else {
			fields["min"] = L.CheckNumber(1)
		}
		L.Push(tagged(L, "tension_above", fields))
		return 1
	}))

	// HasFeature("rail_depot")
	L.SetGlobal("HasFeature", L.NewFunction(func(L *lua.LState) int {
		L.Push(tagged(L, "has_feature", map[string]lua.LValue{
			"feature": lua.LString(L.CheckString(1)),
		}))
		return 1
	}))
}
