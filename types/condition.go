package types

// Condition is the closed set of dialogue/quest predicates. Each kind is
// its own struct carrying only the fields that kind needs; the set is
// sealed by the unexported marker method. An empty condition list is
// vacuously true; lists are ANDed.
type Condition interface {
	condition()
}

// QuestStateIs is true when the named quest is in the given status.
type QuestStateIs struct {
	QuestID string
	Status  QuestStatus
}

// HasItem is true when the player holds at least Count of the item.
// A zero Count means one.
type HasItem struct {
	ItemID string
	Count  int
}

// ReputationAtLeast is true when standing with the faction meets Min.
type ReputationAtLeast struct {
	Faction string
	Min     int
}

// GoldAtLeast is true when the player's gold meets Min.
type GoldAtLeast struct {
	Min int
}

// HasTalkedTo is true once the player has spoken with the NPC.
type HasTalkedTo struct {
	NPCID string
}

// TimeOfDayIs is true during the named period: "morning", "day",
// "evening", or "night".
type TimeOfDayIs struct {
	Period string
}

// FlagSet is true when the named flag is set.
type FlagSet struct {
	Flag string
}

// FlagNotSet is true when the named flag is unset.
type FlagNotSet struct {
	Flag string
}

// FirstVisit is true on the player's first conversation with the
// tree's NPC.
type FirstVisit struct{}

// ReturnVisit is true on any conversation after the first.
type ReturnVisit struct{}

func (QuestStateIs) condition()      {}
func (HasItem) condition()           {}
func (ReputationAtLeast) condition() {}
func (GoldAtLeast) condition()       {}
func (HasTalkedTo) condition()       {}
func (TimeOfDayIs) condition()       {}
func (FlagSet) condition()           {}
func (FlagNotSet) condition()        {}
func (FirstVisit) condition()        {}
func (ReturnVisit) condition()       {}
