// Package dialogue interprets dialogue trees at runtime: entry-point
// resolution, condition-gated choices, and traversal. The engine is
// stateless and never mutates game state: effects are reported, in
// declaration order, for the caller to apply.
package dialogue

import (
	"fmt"
	"sort"

	"github.com/nathoo/frontiercore/types"
)

// ResolveEntry returns the starting node for a conversation: entry points
// are tried in descending priority and the first whose entire condition
// list holds wins. If none match, the lowest-priority entry point is the
// fallback. Returns false only for a tree with no entry points, or when
// the winning entry references a missing node (an authoring bug CheckTree
// reports).
func ResolveEntry(tree *types.DialogueTree, v View) (types.DialogueNode, bool) {
	if len(tree.Entries) == 0 {
		return types.DialogueNode{}, false
	}

	entries := make([]types.EntryPoint, len(tree.Entries))
	copy(entries, tree.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})

	chosen := entries[len(entries)-1] // lowest priority is always eligible
	for _, e := range entries {
		if EvalAll(e.Conditions, v, tree.NPCID) {
			chosen = e
			break
		}
	}

	node, ok := tree.Nodes[chosen.NodeID]
	return node, ok
}

// AvailableChoices returns the node's choices whose condition lists are
// entirely satisfied. A choice with no conditions is always available.
func AvailableChoices(tree *types.DialogueTree, node types.DialogueNode, v View) []types.Choice {
	var out []types.Choice
	for _, c := range node.Choices {
		if EvalAll(c.Conditions, v, tree.NPCID) {
			out = append(out, c)
		}
	}
	return out
}

// EnterEffects returns the effects that fire once when a node becomes
// current, before its choices are computed.
func EnterEffects(node types.DialogueNode) []types.Effect {
	return node.OnEnter
}

// Result is the outcome of selecting a choice: the ordered effect list to
// apply, the next node (valid when Ended is false), and whether the
// conversation ended.
type Result struct {
	Effects []types.Effect
	Next    types.DialogueNode
	Ended   bool
}

// Select applies a choice: its effect list is reported in declaration
// order, then the conversation transitions to the choice's next node.
// An empty next-node ID ends the conversation. A dangling next-node
// reference is a fatal authoring bug (run CheckTree before traversal)
// and is returned as an error rather than recovered from.
func Select(tree *types.DialogueTree, choice types.Choice) (Result, error) {
	res := Result{Effects: choice.Effects}
	if choice.NextNodeID == "" {
		res.Ended = true
		return res, nil
	}
	next, ok := tree.Nodes[choice.NextNodeID]
	if !ok {
		return Result{}, fmt.Errorf("dialogue tree %s: choice %q references missing node %q",
			tree.ID, choice.Text, choice.NextNodeID)
	}
	res.Next = next
	return res, nil
}
