package types

// ObjectiveType is the closed set of quest objective kinds.
type ObjectiveType string

const (
	ObjectiveKill     ObjectiveType = "kill"
	ObjectiveCollect  ObjectiveType = "collect"
	ObjectiveTalk     ObjectiveType = "talk"
	ObjectiveVisit    ObjectiveType = "visit"
	ObjectiveInteract ObjectiveType = "interact"
	ObjectiveDeliver  ObjectiveType = "deliver"
)

// QuestStatus is the quest lifecycle state.
type QuestStatus string

const (
	QuestAvailable QuestStatus = "available"
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
	QuestAbandoned QuestStatus = "abandoned"
)

// Reward is what a stage or quest grants.
type Reward struct {
	XP    int
	Gold  int
	Items []string
}

// Prerequisites gate whether a quest may move from available to active.
// All listed requirements are ANDed.
type Prerequisites struct {
	Quests     []string       // quest IDs that must be completed
	MinLevel   int            // 0 = no level requirement
	Reputation map[string]int // faction → minimum reputation
}

// Objective is a concrete quest objective. IDs are unique within a quest.
type Objective struct {
	ID          string
	Type        ObjectiveType
	Target      string
	Count       int
	Optional    bool
	Description string
}

// QuestStage is one phase of a quest with its own objectives and rewards.
type QuestStage struct {
	ID          string
	Title       string
	Description string
	Objectives  []Objective
	Rewards     Reward
}

// Quest is an ordered sequence of stages. Top-level rewards are granted
// once, on overall completion, additive to the final stage's rewards.
type Quest struct {
	ID          string
	ArchetypeID string
	Category    string
	Title       string
	Description string
	GiverID     string
	Stages      []QuestStage
	Rewards     Reward
	Prereqs     Prerequisites
}

// ActiveQuest is the runtime state of one accepted quest, separate from
// the immutable Quest definition. StageIndex is monotonically
// non-decreasing. Progress keys are objective IDs, which are unique
// within the quest.
type ActiveQuest struct {
	QuestID    string
	Status     QuestStatus
	StageIndex int
	Progress   map[string]int
	StartedAt  int64
	UpdatedAt  int64
}
