package types

// DialogueTree is a set of uniquely-ID'd nodes plus prioritized entry
// points. Every NextNodeID referenced anywhere must resolve to a node in
// the same tree; this is verified by the integrity check, not enforced
// structurally.
type DialogueTree struct {
	ID      string
	NPCID   string
	Entries []EntryPoint
	Nodes   map[string]DialogueNode
}

// EntryPoint is a candidate starting node, gated by conditions and ranked
// by priority (higher wins). The lowest-priority entry is the fallback
// when no entry's conditions are satisfiable.
type EntryPoint struct {
	NodeID     string
	Priority   int
	Conditions []Condition
}

// DialogueNode is one state of a conversation.
type DialogueNode struct {
	ID      string
	Speaker string
	Text    string
	OnEnter []Effect // fire once, when the node becomes current
	Choices []Choice
}

// Choice is a player response. An empty NextNodeID ends the conversation.
// A choice with no conditions is always available.
type Choice struct {
	Text       string
	NextNodeID string
	Conditions []Condition
	Effects    []Effect
}
