// Package quest tracks multi-stage quest progression. The Quest
// definition stays immutable; all runtime state lives in ActiveQuest.
package quest

import (
	"github.com/nathoo/frontiercore/types"
)

// View is the read-only player surface prerequisite checks run against.
type View interface {
	CompletedQuests() map[string]bool
	PlayerLevel() int
	Reputation(faction string) int
}

// CanStart reports whether the quest may move from available to active:
// every prerequisite quest completed, player level at or above MinLevel,
// and every faction-reputation threshold met. All are ANDed; any single
// failure blocks start.
func CanStart(q *types.Quest, v View) bool {
	completed := v.CompletedQuests()
	for _, id := range q.Prereqs.Quests {
		if !completed[id] {
			return false
		}
	}
	if q.Prereqs.MinLevel > 0 && v.PlayerLevel() < q.Prereqs.MinLevel {
		return false
	}
	for faction, min := range q.Prereqs.Reputation {
		if v.Reputation(faction) < min {
			return false
		}
	}
	return true
}

// Start creates runtime state for an accepted quest.
func Start(q *types.Quest, now int64) *types.ActiveQuest {
	return &types.ActiveQuest{
		QuestID:   q.ID,
		Status:    types.QuestActive,
		Progress:  map[string]int{},
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Abandon marks an active quest abandoned. No-op in any other status.
func Abandon(aq *types.ActiveQuest, now int64) {
	if aq.Status == types.QuestActive {
		aq.Status = types.QuestAbandoned
		aq.UpdatedAt = now
	}
}

// Fail marks an active quest failed. No-op in any other status.
func Fail(aq *types.ActiveQuest, now int64) {
	if aq.Status == types.QuestActive {
		aq.Status = types.QuestFailed
		aq.UpdatedAt = now
	}
}

// CurrentStage returns the active stage, or false past the end.
func CurrentStage(q *types.Quest, aq *types.ActiveQuest) (types.QuestStage, bool) {
	if aq.StageIndex < 0 || aq.StageIndex >= len(q.Stages) {
		return types.QuestStage{}, false
	}
	return q.Stages[aq.StageIndex], true
}

// RecordProgress credits n toward every objective of the current stage
// matching the given type and target, and reports whether anything
// advanced. Progress past an objective's required count is clamped.
func RecordProgress(q *types.Quest, aq *types.ActiveQuest, typ types.ObjectiveType, target string, n int, now int64) bool {
	if aq.Status != types.QuestActive || n <= 0 {
		return false
	}
	stage, ok := CurrentStage(q, aq)
	if !ok {
		return false
	}
	advanced := false
	for _, obj := range stage.Objectives {
		if obj.Type != typ || obj.Target != target {
			continue
		}
		cur := aq.Progress[obj.ID]
		if cur >= obj.Count {
			continue
		}
		cur += n
		if cur > obj.Count {
			cur = obj.Count
		}
		aq.Progress[obj.ID] = cur
		advanced = true
	}
	if advanced {
		aq.UpdatedAt = now
	}
	return advanced
}

// ObjectiveSatisfied reports whether progress has reached the objective's
// required count.
func ObjectiveSatisfied(aq *types.ActiveQuest, obj types.Objective) bool {
	return aq.Progress[obj.ID] >= obj.Count
}

// StageComplete reports whether every non-optional objective of the
// current stage is satisfied. Optional objectives never block progression.
func StageComplete(q *types.Quest, aq *types.ActiveQuest) bool {
	stage, ok := CurrentStage(q, aq)
	if !ok {
		return false
	}
	for _, obj := range stage.Objectives {
		if obj.Optional {
			continue
		}
		if !ObjectiveSatisfied(aq, obj) {
			return false
		}
	}
	return true
}

// IsComplete reports whether the quest is complete: the active stage is
// the last stage and that stage is complete.
func IsComplete(q *types.Quest, aq *types.ActiveQuest) bool {
	return aq.StageIndex == len(q.Stages)-1 && StageComplete(q, aq)
}

// Advance moves to the next stage if the current one is complete and is
// not the last, returning the completed stage's rewards. The stage index
// never decreases; progress for the new stage starts empty because
// objective IDs are stage-scoped.
func Advance(q *types.Quest, aq *types.ActiveQuest, now int64) (types.Reward, bool) {
	if aq.Status != types.QuestActive || !StageComplete(q, aq) {
		return types.Reward{}, false
	}
	if aq.StageIndex >= len(q.Stages)-1 {
		return types.Reward{}, false
	}
	stage := q.Stages[aq.StageIndex]
	aq.StageIndex++
	aq.UpdatedAt = now
	return stage.Rewards, true
}

// Complete finishes the quest, returning the final stage's rewards and
// the quest's top-level rewards combined. The top-level rewards are
// granted only once, additive to the final stage's, never a replacement.
func Complete(q *types.Quest, aq *types.ActiveQuest, now int64) (types.Reward, bool) {
	if aq.Status != types.QuestActive || !IsComplete(q, aq) {
		return types.Reward{}, false
	}
	aq.Status = types.QuestCompleted
	aq.UpdatedAt = now

	final := q.Stages[len(q.Stages)-1].Rewards
	total := types.Reward{
		XP:   final.XP + q.Rewards.XP,
		Gold: final.Gold + q.Rewards.Gold,
	}
	total.Items = append(total.Items, final.Items...)
	total.Items = append(total.Items, q.Rewards.Items...)
	return total, true
}
