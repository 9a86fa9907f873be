package state

import (
	"github.com/nathoo/frontiercore/engine/quest"
	"github.com/nathoo/frontiercore/types"
)

// Apply executes an ordered effect list against the player state and
// returns short human-readable notes for the front-end. Unknown quest
// IDs are skipped: a generated tree can only reference quests it was
// generated alongside, so a miss is an authoring problem the integrity
// check reports, not a runtime failure.
func (p *PlayerState) Apply(effects []types.Effect) []string {
	var notes []string
	for _, eff := range effects {
		if note := p.applyOne(eff); note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}

func (p *PlayerState) applyOne(eff types.Effect) string {
	p.Clock++
	switch e := eff.(type) {
	case types.StartQuest:
		q, ok := p.Defs[e.QuestID]
		if !ok {
			return ""
		}
		if _, active := p.Quests[e.QuestID]; active {
			return ""
		}
		if !quest.CanStart(q, p) {
			return "You don't meet the requirements for \"" + q.Title + "\"."
		}
		p.Quests[e.QuestID] = quest.Start(q, p.Clock)
		return "Quest started: " + q.Title

	case types.AdvanceQuest:
		q, aq := p.questPair(e.QuestID)
		if q == nil {
			return ""
		}
		if reward, ok := quest.Advance(q, aq, p.Clock); ok {
			p.grant(reward)
			return "Quest advanced: " + q.Title
		}
		return ""

	case types.CompleteQuest:
		q, aq := p.questPair(e.QuestID)
		if q == nil {
			return ""
		}
		if reward, ok := quest.Complete(q, aq, p.Clock); ok {
			p.grant(reward)
			return "Quest completed: " + q.Title
		}
		return ""

	case types.GiveItem:
		n := e.Count
		if n <= 0 {
			n = 1
		}
		p.Items[e.ItemID] += n
		return ""

	case types.TakeItem:
		n := e.Count
		if n <= 0 {
			n = 1
		}
		p.Items[e.ItemID] -= n
		if p.Items[e.ItemID] <= 0 {
			delete(p.Items, e.ItemID)
		}
		return ""

	case types.GiveGold:
		p.Purse += e.Amount
		return ""

	case types.TakeGold:
		p.Purse -= e.Amount
		if p.Purse < 0 {
			p.Purse = 0
		}
		return ""

	case types.ChangeReputation:
		p.Rep[e.Faction] += e.Delta
		return ""

	case types.SetFlag:
		p.Flags[e.Flag] = true
		return ""

	case types.ClearFlag:
		delete(p.Flags, e.Flag)
		return ""

	case types.UnlockLocation:
		p.Unlocked[e.LocationID] = true
		return "New location: " + e.LocationID

	case types.ChangeNPCState:
		p.NPCStates[e.NPCID] = e.State
		return ""

	case types.TriggerEvent:
		p.Events = append(p.Events, e.Event)
		return ""

	case types.OpenShop:
		p.OpenShopID = e.NPCID
		return ""

	default:
		return ""
	}
}

func (p *PlayerState) questPair(questID string) (*types.Quest, *types.ActiveQuest) {
	q, ok := p.Defs[questID]
	if !ok {
		return nil, nil
	}
	aq, ok := p.Quests[questID]
	if !ok {
		return nil, nil
	}
	return q, aq
}

func (p *PlayerState) grant(r types.Reward) {
	p.Purse += r.Gold
	for _, item := range r.Items {
		p.Items[item]++
	}
	// XP is tracked by the host game; the explorer only banks gold/items.
}
