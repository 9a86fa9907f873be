package types

// NPC is a fully concrete generated character. No ranges, no placeholders.
type NPC struct {
	ID          string
	TemplateID  string
	Name        string
	Gender      string
	Role        string
	Faction     string
	Level       int
	Personality map[string]float64
	Backstory   string
	Description string
	QuestGiver  bool
	HasShop     bool
}

// EnemyGroup is one resolved enemy slot of an encounter.
type EnemyGroup struct {
	Enemy string
	Count int
	Level int
}

// Encounter is a fully concrete generated encounter.
type Encounter struct {
	ID         string
	TemplateID string
	Intro      string
	Enemies    []EnemyGroup
	RewardXP   int
	RewardGold int
}

// Location is a populated place within a region.
type Location struct {
	ID          string
	Name        string
	Type        string
	DangerLevel float64
	NPCs        []NPC
	Quests      []Quest
	Encounters  map[string][]Encounter  // keyed by time-of-day period
	Dialogue    map[string]DialogueTree // keyed by NPC ID
}

// Region is a generated stretch of the frontier.
type Region struct {
	ID        string
	Name      string
	Biome     string
	Locations []Location
}

// World is the caller-owned result of world generation. The generators
// retain no reference to it.
type World struct {
	Seed    int64
	Regions []Region
}
