package dialogue

import (
	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// View is the read-only game-state surface conditions evaluate against.
// The engine never mutates state through it.
type View interface {
	QuestStatus(questID string) types.QuestStatus
	ItemCount(itemID string) int
	Reputation(faction string) int
	Gold() int
	HasTalkedTo(npcID string) bool
	GameHour() int
	Flag(name string) bool
	// VisitCount reports completed conversations with the tree's NPC;
	// zero means this is the first visit.
	VisitCount(npcID string) int
}

// EvalCondition evaluates a single condition against the view. npcID is
// the tree's NPC, used by the visit conditions.
func EvalCondition(c types.Condition, v View, npcID string) bool {
	switch cond := c.(type) {
	case types.QuestStateIs:
		return v.QuestStatus(cond.QuestID) == cond.Status

	case types.HasItem:
		count := cond.Count
		if count <= 0 {
			count = 1
		}
		return v.ItemCount(cond.ItemID) >= count

	case types.ReputationAtLeast:
		return v.Reputation(cond.Faction) >= cond.Min

	case types.GoldAtLeast:
		return v.Gold() >= cond.Min

	case types.HasTalkedTo:
		return v.HasTalkedTo(cond.NPCID)

	case types.TimeOfDayIs:
		return engine.PeriodOfHour(v.GameHour()) == cond.Period

	case types.FlagSet:
		return v.Flag(cond.Flag)

	case types.FlagNotSet:
		return !v.Flag(cond.Flag)

	case types.FirstVisit:
		return v.VisitCount(npcID) == 0

	case types.ReturnVisit:
		return v.VisitCount(npcID) > 0

	default:
		return false
	}
}

// EvalAll returns true if all conditions pass (AND logic).
// An empty condition list is vacuously true.
func EvalAll(conditions []types.Condition, v View, npcID string) bool {
	for _, c := range conditions {
		if !EvalCondition(c, v, npcID) {
			return false
		}
	}
	return true
}
