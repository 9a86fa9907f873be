package state

import (
	"reflect"
	"testing"

	"github.com/nathoo/frontiercore/types"
)

func testQuest() *types.Quest {
	return &types.Quest{
		ID:    "clear_vermin",
		Title: "Trouble at the Old Mill",
		Stages: []types.QuestStage{
			{
				ID: "s1",
				Objectives: []types.Objective{
					{ID: "s1_o1", Type: types.ObjectiveKill, Target: "coyote", Count: 1},
				},
				Rewards: types.Reward{Gold: 5},
			},
		},
		Rewards: types.Reward{XP: 50, Gold: 25, Items: []string{"rifle"}},
	}
}

func TestApply_ItemsAndGold(t *testing.T) {
	p := New(3, 13)
	p.Apply([]types.Effect{
		types.GiveGold{Amount: 40},
		types.GiveItem{ItemID: "pelt", Count: 2},
		types.GiveItem{ItemID: "tonic"}, // zero count means one
		types.TakeGold{Amount: 15},
		types.TakeItem{ItemID: "pelt", Count: 1},
	})

	if p.Purse != 25 {
		t.Errorf("purse = %d, want 25", p.Purse)
	}
	if p.Items["pelt"] != 1 || p.Items["tonic"] != 1 {
		t.Errorf("items = %v", p.Items)
	}

	p.Apply([]types.Effect{types.TakeGold{Amount: 100}})
	if p.Purse != 0 {
		t.Errorf("purse went negative: %d", p.Purse)
	}
	p.Apply([]types.Effect{types.TakeItem{ItemID: "tonic", Count: 5}})
	if _, ok := p.Items["tonic"]; ok {
		t.Error("emptied item should be removed")
	}
}

func TestApply_FlagsReputationAndMisc(t *testing.T) {
	p := New(3, 13)
	p.Apply([]types.Effect{
		types.SetFlag{Flag: "bank_robbed"},
		types.ChangeReputation{Faction: "settlers", Delta: 5},
		types.ChangeReputation{Faction: "settlers", Delta: -2},
		types.UnlockLocation{LocationID: "loc_mine_1"},
		types.ChangeNPCState{NPCID: "npc_sheriff", State: "hostile"},
		types.TriggerEvent{Event: "posse_forms"},
		types.OpenShop{NPCID: "npc_trader"},
	})

	if !p.Flag("bank_robbed") {
		t.Error("flag not set")
	}
	if p.Reputation("settlers") != 3 {
		t.Errorf("reputation = %d, want 3", p.Reputation("settlers"))
	}
	if !p.Unlocked["loc_mine_1"] {
		t.Error("location not unlocked")
	}
	if p.NPCStates["npc_sheriff"] != "hostile" {
		t.Error("npc state not recorded")
	}
	if !reflect.DeepEqual(p.Events, []string{"posse_forms"}) {
		t.Errorf("events = %v", p.Events)
	}
	if p.OpenShopID != "npc_trader" {
		t.Errorf("open shop = %q", p.OpenShopID)
	}

	p.Apply([]types.Effect{types.ClearFlag{Flag: "bank_robbed"}})
	if p.Flag("bank_robbed") {
		t.Error("flag not cleared")
	}
}

func TestApply_QuestLifecycle(t *testing.T) {
	p := New(3, 13)
	q := testQuest()
	p.KnowQuest(q)

	notes := p.Apply([]types.Effect{types.StartQuest{QuestID: q.ID}})
	if len(notes) != 1 || notes[0] != "Quest started: Trouble at the Old Mill" {
		t.Fatalf("notes = %v", notes)
	}
	if p.QuestStatus(q.ID) != types.QuestActive {
		t.Fatalf("status = %q, want active", p.QuestStatus(q.ID))
	}

	// Restarting an active quest is a no-op.
	if notes := p.Apply([]types.Effect{types.StartQuest{QuestID: q.ID}}); len(notes) != 0 {
		t.Fatalf("restart produced notes: %v", notes)
	}

	aq := p.Quests[q.ID]
	aq.Progress["s1_o1"] = 1
	p.Apply([]types.Effect{types.CompleteQuest{QuestID: q.ID}})

	if p.QuestStatus(q.ID) != types.QuestCompleted {
		t.Fatalf("status = %q, want completed", p.QuestStatus(q.ID))
	}
	// Final stage gold 5 + quest gold 25, plus the quest item.
	if p.Purse != 30 {
		t.Errorf("purse = %d, want 30", p.Purse)
	}
	if p.Items["rifle"] != 1 {
		t.Errorf("items = %v, want rifle", p.Items)
	}
	if !p.CompletedQuests()[q.ID] {
		t.Error("completed map missing quest")
	}
}

func TestApply_UnknownQuestSkipped(t *testing.T) {
	p := New(3, 13)
	if notes := p.Apply([]types.Effect{types.StartQuest{QuestID: "ghost"}}); len(notes) != 0 {
		t.Fatalf("unknown quest produced notes: %v", notes)
	}
	if len(p.Quests) != 0 {
		t.Fatal("unknown quest should not be tracked")
	}
}

func TestApply_PrereqBlockedStart(t *testing.T) {
	p := New(1, 13)
	q := testQuest()
	q.Prereqs = types.Prerequisites{MinLevel: 5}
	p.KnowQuest(q)

	notes := p.Apply([]types.Effect{types.StartQuest{QuestID: q.ID}})
	if len(notes) != 1 {
		t.Fatalf("expected a refusal note, got %v", notes)
	}
	if _, ok := p.Quests[q.ID]; ok {
		t.Fatal("blocked quest should not start")
	}
}

func TestPlayerState_ViewDefaults(t *testing.T) {
	p := New(3, 19)
	if p.QuestStatus("unknown") != types.QuestAvailable {
		t.Error("unknown quest should read as available")
	}
	if p.Gold() != 0 || p.ItemCount("pelt") != 0 || p.VisitCount("npc_x") != 0 {
		t.Error("zero-value reads expected on empty state")
	}
	if p.GameHour() != 19 || p.PlayerLevel() != 3 {
		t.Error("constructor values not reflected")
	}
}
