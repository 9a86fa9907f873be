package dialogue

import (
	"fmt"
	"sort"

	"github.com/nathoo/frontiercore/types"
)

// CheckTree verifies a tree's referential integrity and returns
// human-readable warnings: entry points and choices referencing missing
// nodes, node ID mismatches, trees with no entries, and unreachable
// nodes. Traversal does not re-check; an unvalidated tree walked into a
// dangling reference is an authoring bug to fix before traversal.
func CheckTree(tree *types.DialogueTree) []string {
	var warnings []string

	if len(tree.Entries) == 0 {
		warnings = append(warnings, fmt.Sprintf("tree %s: no entry points", tree.ID))
	}
	for _, e := range tree.Entries {
		if _, ok := tree.Nodes[e.NodeID]; !ok {
			warnings = append(warnings, fmt.Sprintf(
				"tree %s: entry point (priority %d) references missing node %q",
				tree.ID, e.Priority, e.NodeID))
		}
	}

	reachable := map[string]bool{}
	var visit func(id string)
	visit = func(id string) {
		if reachable[id] {
			return
		}
		node, ok := tree.Nodes[id]
		if !ok {
			return
		}
		reachable[id] = true
		for _, c := range node.Choices {
			if c.NextNodeID != "" {
				visit(c.NextNodeID)
			}
		}
	}
	for _, e := range tree.Entries {
		visit(e.NodeID)
	}

	ids := make([]string, 0, len(tree.Nodes))
	for id := range tree.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := tree.Nodes[id]
		if node.ID != "" && node.ID != id {
			warnings = append(warnings, fmt.Sprintf(
				"tree %s: node keyed %q declares ID %q", tree.ID, id, node.ID))
		}
		for _, c := range node.Choices {
			if c.NextNodeID == "" {
				continue
			}
			if _, ok := tree.Nodes[c.NextNodeID]; !ok {
				warnings = append(warnings, fmt.Sprintf(
					"tree %s: node %q choice %q references missing node %q",
					tree.ID, id, c.Text, c.NextNodeID))
			}
		}
		if !reachable[id] {
			warnings = append(warnings, fmt.Sprintf(
				"tree %s: node %q is unreachable from any entry point", tree.ID, id))
		}
	}

	return warnings
}
