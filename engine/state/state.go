// Package state holds the caller-side runtime player state the explorer
// and tests drive conversations and quests against. The evaluators stay
// pure; this is where their reported effect lists land.
package state

import (
	"github.com/nathoo/frontiercore/types"
)

// PlayerState is mutable game state owned by the caller. It satisfies the
// dialogue and quest View interfaces.
type PlayerState struct {
	Level      int
	Hour       int
	Purse      int
	Items      map[string]int
	Flags      map[string]bool
	Rep        map[string]int
	Quests     map[string]*types.ActiveQuest // keyed by quest ID
	Defs       map[string]*types.Quest       // known quest definitions
	Talked     map[string]bool
	Visits     map[string]int
	Unlocked   map[string]bool
	NPCStates  map[string]string
	Events     []string
	OpenShopID string // last shop opened, consumed by the front-end
	Clock      int64  // monotonic tick for quest timestamps
}

// New creates an empty player state at the given level and game hour.
func New(level, hour int) *PlayerState {
	return &PlayerState{
		Level:     level,
		Hour:      hour,
		Items:     map[string]int{},
		Flags:     map[string]bool{},
		Rep:       map[string]int{},
		Quests:    map[string]*types.ActiveQuest{},
		Defs:      map[string]*types.Quest{},
		Talked:    map[string]bool{},
		Visits:    map[string]int{},
		Unlocked:  map[string]bool{},
		NPCStates: map[string]string{},
	}
}

// KnowQuest registers a quest definition so StartQuest effects can
// resolve it.
func (p *PlayerState) KnowQuest(q *types.Quest) {
	p.Defs[q.ID] = q
}

// dialogue.View

func (p *PlayerState) QuestStatus(questID string) types.QuestStatus {
	if aq, ok := p.Quests[questID]; ok {
		return aq.Status
	}
	return types.QuestAvailable
}

func (p *PlayerState) ItemCount(itemID string) int   { return p.Items[itemID] }
func (p *PlayerState) Reputation(faction string) int { return p.Rep[faction] }
func (p *PlayerState) Gold() int                     { return p.Purse }
func (p *PlayerState) HasTalkedTo(npcID string) bool { return p.Talked[npcID] }
func (p *PlayerState) GameHour() int                 { return p.Hour }
func (p *PlayerState) Flag(name string) bool         { return p.Flags[name] }
func (p *PlayerState) VisitCount(npcID string) int   { return p.Visits[npcID] }

// quest.View

func (p *PlayerState) CompletedQuests() map[string]bool {
	done := map[string]bool{}
	for id, aq := range p.Quests {
		if aq.Status == types.QuestCompleted {
			done[id] = true
		}
	}
	return done
}

func (p *PlayerState) PlayerLevel() int { return p.Level }
