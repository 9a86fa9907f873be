package types

// Effect is the closed set of state mutation instructions a dialogue
// choice or node may carry. The dialogue engine never executes effects;
// it reports them, in declaration order, for the caller to apply.
type Effect interface {
	effect()
}

// StartQuest moves a quest from available to active.
type StartQuest struct {
	QuestID string
}

// AdvanceQuest moves an active quest to its next stage.
type AdvanceQuest struct {
	QuestID string
}

// CompleteQuest finishes an active quest.
type CompleteQuest struct {
	QuestID string
}

// GiveItem adds Count of the item to the player. Zero Count means one.
type GiveItem struct {
	ItemID string
	Count  int
}

// TakeItem removes Count of the item from the player. Zero Count means one.
type TakeItem struct {
	ItemID string
	Count  int
}

// GiveGold adds gold.
type GiveGold struct {
	Amount int
}

// TakeGold removes gold.
type TakeGold struct {
	Amount int
}

// ChangeReputation shifts standing with a faction by Delta (may be
// negative).
type ChangeReputation struct {
	Faction string
	Delta   int
}

// SetFlag sets the named flag.
type SetFlag struct {
	Flag string
}

// ClearFlag unsets the named flag.
type ClearFlag struct {
	Flag string
}

// UnlockLocation makes a location reachable.
type UnlockLocation struct {
	LocationID string
}

// ChangeNPCState switches an NPC's behavioral state.
type ChangeNPCState struct {
	NPCID string
	State string
}

// TriggerEvent fires a named world event.
type TriggerEvent struct {
	Event string
}

// OpenShop opens the NPC's shop interface.
type OpenShop struct {
	NPCID string
}

func (StartQuest) effect()       {}
func (AdvanceQuest) effect()     {}
func (CompleteQuest) effect()    {}
func (GiveItem) effect()         {}
func (TakeItem) effect()         {}
func (GiveGold) effect()         {}
func (TakeGold) effect()         {}
func (ChangeReputation) effect() {}
func (SetFlag) effect()          {}
func (ClearFlag) effect()        {}
func (UnlockLocation) effect()   {}
func (ChangeNPCState) effect()   {}
func (TriggerEvent) effect()     {}
func (OpenShop) effect()         {}
