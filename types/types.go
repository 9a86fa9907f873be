// Package types defines the shared data structures for the FrontierCore
// generation pipeline and runtime evaluators. This package contains only
// type definitions; no logic beyond variant markers.
package types

// Range is an inclusive [Min, Max] interval for float draws.
type Range struct {
	Min float64
	Max float64
}

// IntRange is an inclusive [Min, Max] interval for integer draws.
type IntRange struct {
	Min int
	Max int
}

// Weighted pairs a string value with a selection weight.
type Weighted struct {
	Value  string
	Weight int
}

// GenerationContext carries the ambient world/player facts passed by value
// into every generator call. Generators never mutate it.
type GenerationContext struct {
	WorldSeed       int64
	RegionID        string // optional
	LocationID      string // optional
	LocationType    string // optional; filters template applicability
	Biome           string // optional
	PlayerLevel     int    // 1..10
	GameHour        int    // 0..24
	FactionTensions map[string]float64
	ActiveEvents    []string
	ContextTags     []string
}

// Pack is the immutable template/pool library loaded once at process start.
type Pack struct {
	Name            string
	Version         string
	Author          string
	NamePools       map[string]NamePool // keyed by origin
	NPCTemplates    []NPCTemplate
	QuestArchetypes []QuestArchetype
	Encounters      []EncounterTemplate
	Snippets        []DialogueSnippet
	PriceModifiers  []PriceModifier
	Regions         []RegionTemplate
	Trees           map[string]DialogueTree // authored dialogue, keyed by ID
}
