package gen

import (
	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/types"
)

// Snippet slots the dialogue generator draws from.
const (
	SlotGreeting   = "greeting"
	SlotReturn     = "return_greeting"
	SlotSmalltalk  = "smalltalk"
	SlotQuestOffer = "quest_offer"
	SlotShop       = "shop"
	SlotFarewell   = "farewell"
)

// Dialogue builds a small conversation tree for a generated NPC from the
// pack's dialogue snippets, filtered by the NPC's role. questID, when
// non-empty, adds a quest-offer branch whose accept choice carries a
// StartQuest effect; a shop branch is added for shopkeepers. Returns
// (zero, false) when no greeting snippet fits the role.
func Dialogue(rng *engine.Stream, pack *types.Pack, npc types.NPC, questID string) (types.DialogueTree, bool) {
	vars := map[string]string{
		"name":    npc.Name,
		"role":    npc.Role,
		"faction": npc.Faction,
	}

	greeting, ok := snippetLine(rng, pack, SlotGreeting, npc.Role, vars)
	if !ok {
		return types.DialogueTree{}, false
	}

	tree := types.DialogueTree{
		ID:    "dlg_" + npc.ID,
		NPCID: npc.ID,
		Nodes: map[string]types.DialogueNode{},
	}

	farewellText := "So long."
	if line, ok := snippetLine(rng, pack, SlotFarewell, npc.Role, vars); ok {
		farewellText = line
	}

	var choices []types.Choice

	if line, ok := snippetLine(rng, pack, SlotSmalltalk, npc.Role, vars); ok {
		tree.Nodes["smalltalk"] = types.DialogueNode{
			ID:      "smalltalk",
			Speaker: npc.Name,
			Text:    line,
			Choices: []types.Choice{
				{Text: "Anything else?", NextNodeID: "greeting"},
				{Text: "I'd best be going.", NextNodeID: "farewell"},
			},
		}
		choices = append(choices, types.Choice{Text: "What's the word around here?", NextNodeID: "smalltalk"})
	}

	if questID != "" {
		offerText := "I might have a job for the right kind of stranger."
		if line, ok := snippetLine(rng, pack, SlotQuestOffer, npc.Role, vars); ok {
			offerText = line
		}
		tree.Nodes["quest_offer"] = types.DialogueNode{
			ID:      "quest_offer",
			Speaker: npc.Name,
			Text:    offerText,
			Choices: []types.Choice{
				{
					Text:       "I'll take the job.",
					NextNodeID: "farewell",
					Conditions: []types.Condition{types.QuestStateIs{QuestID: questID, Status: types.QuestAvailable}},
					Effects:    []types.Effect{types.StartQuest{QuestID: questID}},
				},
				{Text: "Not my kind of work.", NextNodeID: "greeting"},
			},
		}
		choices = append(choices, types.Choice{
			Text:       "Got any work?",
			NextNodeID: "quest_offer",
			Conditions: []types.Condition{types.QuestStateIs{QuestID: questID, Status: types.QuestAvailable}},
		})
	}

	if npc.HasShop {
		shopText := "Take a look at my wares."
		if line, ok := snippetLine(rng, pack, SlotShop, npc.Role, vars); ok {
			shopText = line
		}
		tree.Nodes["shop"] = types.DialogueNode{
			ID:      "shop",
			Speaker: npc.Name,
			Text:    shopText,
			OnEnter: []types.Effect{types.OpenShop{NPCID: npc.ID}},
			Choices: []types.Choice{
				{Text: "That's all for now.", NextNodeID: "greeting"},
			},
		}
		choices = append(choices, types.Choice{Text: "What are you selling?", NextNodeID: "shop"})
	}

	choices = append(choices, types.Choice{Text: "Be seeing you.", NextNodeID: "farewell"})

	tree.Nodes["greeting"] = types.DialogueNode{
		ID:      "greeting",
		Speaker: npc.Name,
		Text:    greeting,
		OnEnter: []types.Effect{types.SetFlag{Flag: "met_" + npc.ID}},
		Choices: choices,
	}
	tree.Nodes["farewell"] = types.DialogueNode{
		ID:      "farewell",
		Speaker: npc.Name,
		Text:    farewellText,
		Choices: []types.Choice{{Text: "(leave)", NextNodeID: ""}},
	}

	tree.Entries = []types.EntryPoint{
		{NodeID: "greeting", Priority: 10, Conditions: []types.Condition{types.FirstVisit{}}},
		{NodeID: "greeting", Priority: 0},
	}

	// A return greeting, when the pack provides one, takes over after the
	// first conversation.
	if line, ok := snippetLine(rng, pack, SlotReturn, npc.Role, vars); ok {
		ret := tree.Nodes["greeting"]
		ret.ID = "greeting_return"
		ret.Text = line
		ret.OnEnter = nil
		tree.Nodes["greeting_return"] = ret
		tree.Entries = []types.EntryPoint{
			{NodeID: "greeting", Priority: 10, Conditions: []types.Condition{types.FirstVisit{}}},
			{NodeID: "greeting_return", Priority: 0},
		}
	}

	return tree, true
}

// snippetLine weighted-picks a snippet for the slot compatible with the
// role, then picks and substitutes one of its lines.
func snippetLine(rng *engine.Stream, pack *types.Pack, slot, role string, vars map[string]string) (string, bool) {
	sn, ok := pickTemplate(rng, pack.Snippets,
		func(s types.DialogueSnippet) int { return s.Weight },
		func(s types.DialogueSnippet) bool {
			return s.Slot == slot && matchesFilter(s.Roles, role)
		})
	if !ok || len(sn.Lines) == 0 {
		return "", false
	}
	return Substitute(engine.Pick(rng, sn.Lines), vars), true
}
