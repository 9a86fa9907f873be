package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/frontiercore/engine/state"
	"github.com/nathoo/frontiercore/explore"
	"github.com/nathoo/frontiercore/types"
)

// testWorld returns a one-town world for CLI testing.
func testWorld() (*types.Pack, *types.World) {
	loc := types.Location{
		ID:          "loc_town_1",
		Name:        "Dry Gulch",
		Type:        "town",
		DangerLevel: 0.3,
		NPCs: []types.NPC{
			{ID: "npc_sheriff", Name: "Sheriff Cole", Role: "sheriff",
				Faction: "settlers", Level: 4},
		},
		Dialogue: map[string]types.DialogueTree{
			"npc_sheriff": {
				ID:    "dlg_npc_sheriff",
				NPCID: "npc_sheriff",
				Entries: []types.EntryPoint{
					{NodeID: "greeting", Priority: 0},
				},
				Nodes: map[string]types.DialogueNode{
					"greeting": {
						ID: "greeting", Speaker: "Sheriff Cole", Text: "Howdy.",
						Choices: []types.Choice{{Text: "(leave)", NextNodeID: ""}},
					},
				},
			},
		},
	}
	world := &types.World{
		Seed: 42,
		Regions: []types.Region{
			{ID: "region_1", Name: "Red Mesa", Biome: "badlands",
				Locations: []types.Location{loc}},
		},
	}
	pack := &types.Pack{Name: "Test Pack", Version: "1.0", Author: "Tester"}
	return pack, world
}

func newTestCLI(input string) (*CLI, *bytes.Buffer) {
	pack, world := testWorld()
	session := explore.New(pack, world, state.New(3, 13))
	var out bytes.Buffer
	c := &CLI{
		Session: session,
		Pack:    pack,
		In:      strings.NewReader(input),
		Out:     &out,
	}
	return c, &out
}

func TestCLI_ShowsWorldOnStart(t *testing.T) {
	c, out := newTestCLI("/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Red Mesa") {
		t.Error("expected region list in opening output")
	}
	if !strings.Contains(output, "Dry Gulch") {
		t.Error("expected location list in opening output")
	}
	if !strings.Contains(output, "So long.") {
		t.Error("expected quit message")
	}
}

func TestCLI_Conversation(t *testing.T) {
	c, out := newTestCLI("talk npc_sheriff\n1\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Howdy.") {
		t.Error("expected dialogue line")
	}
	if !strings.Contains(output, "conversation ends") {
		t.Error("expected conversation end")
	}
}

func TestCLI_AgainRepeatsLastCommand(t *testing.T) {
	c, out := newTestCLI("seed\nagain\n/quit\n")
	c.Run()

	if strings.Count(out.String(), "world seed: 42") != 2 {
		t.Errorf("expected seed printed twice:\n%s", out.String())
	}
}

func TestCLI_AgainInsideConversationIsAnAnswer(t *testing.T) {
	// "g" must not repeat a command while numbers are expected.
	c, out := newTestCLI("talk npc_sheriff\ng\nleave\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Pick a number") {
		t.Errorf("expected 'g' to be treated as dialogue input:\n%s", out.String())
	}
}

func TestCLI_CommentsAndBlankLinesSkipped(t *testing.T) {
	c, out := newTestCLI("# a script comment\n\nseed\n/quit\n")
	c.Run()

	output := out.String()
	if strings.Contains(output, "script comment") {
		t.Error("comment line should not be echoed or executed")
	}
	if !strings.Contains(output, "world seed: 42") {
		t.Error("expected seed output")
	}
}

func TestCLI_MetaCommands(t *testing.T) {
	c, out := newTestCLI("/pack\n/help\n/bogus\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Test Pack v1.0 by Tester") {
		t.Error("expected pack info")
	}
	if !strings.Contains(output, "Explorer commands:") {
		t.Error("expected help text")
	}
	if !strings.Contains(output, "Unknown command: /bogus") {
		t.Error("expected unknown meta-command message")
	}
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI("seed\n/quit\n")
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "seed\nworld seed: 42") {
		t.Errorf("expected echoed input before output:\n%s", out.String())
	}
}
