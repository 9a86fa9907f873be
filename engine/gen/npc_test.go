package gen

import (
	"reflect"
	"testing"

	"github.com/nathoo/frontiercore/engine"
)

func TestNPC_Deterministic(t *testing.T) {
	pack := testPack()
	ctx := testCtx()

	a, ok1 := NPC(engine.NewStream(99), pack, ctx)
	b, ok2 := NPC(engine.NewStream(99), pack, ctx)
	if !ok1 || !ok2 {
		t.Fatal("expected NPCs to generate")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different NPCs:\n%+v\n%+v", a, b)
	}
}

func TestNPC_TraitsWithinTemplateRanges(t *testing.T) {
	pack := testPack()
	ctx := testCtx()

	rng := engine.NewStream(5)
	for i := 0; i < 50; i++ {
		npc, ok := NPC(rng, pack, ctx)
		if !ok {
			t.Fatal("expected an NPC")
		}
		if npc.TemplateID != "barkeep" {
			t.Fatalf("town context should only match barkeep, got %q", npc.TemplateID)
		}
		if v := npc.Personality["bravery"]; v < 0.2 || v >= 0.6 {
			t.Fatalf("bravery %v outside template range [0.2,0.6)", v)
		}
		if v := npc.Personality["greed"]; v < 0.4 || v >= 0.9 {
			t.Fatalf("greed %v outside template range [0.4,0.9)", v)
		}
		if npc.Level < ctx.PlayerLevel || npc.Level > ctx.PlayerLevel+2 {
			t.Fatalf("level %d outside offset range", npc.Level)
		}
	}
}

func TestNPC_FlagsFollowChances(t *testing.T) {
	pack := testPack()
	ctx := testCtx()

	// barkeep has questGiverChance and shopChance of 1.0.
	rng := engine.NewStream(17)
	npc, ok := NPC(rng, pack, ctx)
	if !ok {
		t.Fatal("expected an NPC")
	}
	if !npc.QuestGiver || !npc.HasShop {
		t.Fatalf("certain chances should always set flags: %+v", npc)
	}
}

func TestNPC_TextSubstituted(t *testing.T) {
	pack := testPack()
	ctx := testCtx()

	npc, ok := NPC(engine.NewStream(2), pack, ctx)
	if !ok {
		t.Fatal("expected an NPC")
	}
	if npc.Backstory != npc.Name+" came west after the war." {
		t.Errorf("backstory not personalized: %q", npc.Backstory)
	}
	if npc.Description != "A barkeep with watchful eyes." {
		t.Errorf("description not substituted: %q", npc.Description)
	}
}

func TestNPC_NoMatchReturnsAbsent(t *testing.T) {
	pack := testPack()
	ctx := testCtx()
	ctx.LocationType = "fort" // no template allows forts

	if _, ok := NPC(engine.NewStream(1), pack, ctx); ok {
		t.Fatal("expected no NPC for unmatched location type")
	}
}

func TestNPC_FactionFromAllowed(t *testing.T) {
	pack := testPack()
	ctx := testCtx()
	ctx.LocationType = "mine"

	npc, ok := NPC(engine.NewStream(4), pack, ctx)
	if !ok {
		t.Fatal("expected an NPC")
	}
	if npc.Faction != "drifters" {
		t.Fatalf("expected drifters faction, got %q", npc.Faction)
	}
}
