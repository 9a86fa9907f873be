package types

// NamePool holds first names bucketed by gender, surnames, honorific
// titles, and assembly patterns for one naming origin.
type NamePool struct {
	Origin   string
	Male     []string
	Female   []string
	Neutral  []string
	Surnames []string
	Titles   []string
	Patterns []string // e.g. "{{first}} {{last}}", "{{title}} {{last}}"
}

// NPCTemplate is a reusable NPC archetype. Ranges and weights are resolved
// to concrete values at generation time.
type NPCTemplate struct {
	ID                 string
	Role               string
	Weight             int
	AllowedFactions    []string
	ValidLocationTypes []string // empty = applies everywhere
	Personality        map[string]Range // six named traits, each within [0,1]
	NameOrigins        []Weighted
	GenderDistribution [3]float64 // male, female, neutral; sums to 1
	Backstories        []string   // template strings with {{vars}}
	Descriptions       []string
	QuestGiverChance   float64 // [0,1]
	ShopChance         float64 // [0,1]
	LevelOffset        IntRange // added to context player level
}

// QuestArchetype expands into a concrete multi-stage quest.
type QuestArchetype struct {
	ID                 string
	Category           string
	Weight             int
	MinLevel           int
	ValidLocationTypes []string
	ValidFactions      []string // factions a giver may belong to
	Titles             []string // template strings
	Descriptions       []string
	Stages             []StageTemplate
	RewardXP           IntRange // scaled by player level
	RewardGold         IntRange
	Variables          map[string][]string // pools for quest-specific {{vars}}
}

// StageTemplate is one phase of a quest archetype.
type StageTemplate struct {
	Title       string
	Description string
	Objectives  []ObjectiveTemplate
	RewardXP    IntRange
	RewardGold  IntRange
}

// ObjectiveTemplate resolves into a concrete objective.
type ObjectiveTemplate struct {
	Type     ObjectiveType
	Target   string // template string; may carry {{vars}}
	Count    IntRange
	Optional bool
}

// EncounterTemplate describes a combat or hazard encounter archetype.
type EncounterTemplate struct {
	ID          string
	Weight      int
	ValidBiomes []string
	ValidTimes  []string // time-of-day periods; empty = any
	Intros      []string // description templates
	Slots       []EnemySlot
	RewardXP    IntRange // scaled by player level
	RewardGold  IntRange
}

// EnemySlot is one enemy kind within an encounter, with a count range and
// a level multiplier applied to the enemy's base level.
type EnemySlot struct {
	Enemy      string
	BaseLevel  int
	Count      IntRange
	LevelScale float64
}

// DialogueSnippet is a line pool for generated dialogue, filtered by the
// speaking NPC's role and the line's slot in the generated tree.
type DialogueSnippet struct {
	ID     string
	Slot   string // "greeting", "smalltalk", "quest_offer", "shop", "farewell"
	Roles  []string // empty = any role
	Weight int
	Lines  []string // template strings
}

// RegionTemplate drives world layout: how many locations of which types a
// region of this biome contains, and how its pieces are named.
type RegionTemplate struct {
	ID            string
	Biome         string
	Weight        int
	NamePatterns  []string // e.g. "{{prefix}} {{terrain}}"
	NameParts     map[string][]string
	LocationCount IntRange
	Locations     []LocationSlot
}

// LocationSlot is a weighted candidate location type within a region.
type LocationSlot struct {
	Type         string
	Weight       int
	NamePatterns []string
	NameParts    map[string][]string
	NPCCount     IntRange
	DangerLevel  Range
}
