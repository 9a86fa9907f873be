// Package explore is the interactive session behind the CLI and TUI: it
// walks a generated world, runs conversations, tracks quest progress, and
// quotes prices. Front-ends feed it one command at a time and print the
// lines it returns.
package explore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/frontiercore/engine"
	"github.com/nathoo/frontiercore/engine/dialogue"
	"github.com/nathoo/frontiercore/engine/price"
	"github.com/nathoo/frontiercore/engine/quest"
	"github.com/nathoo/frontiercore/engine/state"
	"github.com/nathoo/frontiercore/types"
)

// Session holds one explorer run over a generated world.
type Session struct {
	Pack   *types.Pack
	World  *types.World
	Player *state.PlayerState
	Season string

	regionIdx int
	locIdx    int

	// Active conversation, nil when not talking.
	tree    *types.DialogueTree
	node    types.DialogueNode
	choices []types.Choice
}

// New creates a session positioned at the world's first location. Every
// generated quest is registered so dialogue effects can resolve it.
func New(pack *types.Pack, world *types.World, player *state.PlayerState) *Session {
	s := &Session{Pack: pack, World: world, Player: player, Season: "spring"}
	for _, region := range world.Regions {
		for _, loc := range region.Locations {
			for i := range loc.Quests {
				q := loc.Quests[i]
				player.KnowQuest(&q)
			}
		}
	}
	return s
}

func (s *Session) region() *types.Region {
	if s.regionIdx >= len(s.World.Regions) {
		return nil
	}
	return &s.World.Regions[s.regionIdx]
}

func (s *Session) location() *types.Location {
	r := s.region()
	if r == nil || s.locIdx >= len(r.Locations) {
		return nil
	}
	return &r.Locations[s.locIdx]
}

// Region returns the currently selected region, nil for an empty world.
func (s *Session) Region() *types.Region { return s.region() }

// Location returns the currently selected location, nil for an empty
// region.
func (s *Session) Location() *types.Location { return s.location() }

// Step executes one command and returns the lines to display.
func (s *Session) Step(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if s.tree != nil {
		return s.stepDialogue(input)
	}

	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "world":
		return s.cmdWorld()
	case "region":
		return s.cmdRegion(args)
	case "location", "loc", "look":
		return s.cmdLocation(args)
	case "npc":
		return s.cmdNPC(args)
	case "quest":
		return s.cmdQuest(args)
	case "journal":
		return s.cmdJournal()
	case "encounters":
		return s.cmdEncounters(args)
	case "talk":
		return s.cmdTalk(args)
	case "price":
		return s.cmdPrice(args)
	case "stats":
		return s.cmdStats()
	case "time":
		return s.cmdTime(args)
	case "seed":
		return []string{fmt.Sprintf("world seed: %d", s.World.Seed)}
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}
	}
}

func (s *Session) cmdWorld() []string {
	lines := []string{fmt.Sprintf("World (seed %d), %d region(s):", s.World.Seed, len(s.World.Regions))}
	for i, r := range s.World.Regions {
		marker := " "
		if i == s.regionIdx {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s — %s, %d location(s)",
			marker, i+1, r.Name, r.Biome, len(r.Locations)))
	}
	return lines
}

func (s *Session) cmdRegion(args []string) []string {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > len(s.World.Regions) {
			return []string{fmt.Sprintf("No region %q. Use an index from 'world'.", args[0])}
		}
		s.regionIdx = n - 1
		s.locIdx = 0
	}
	r := s.region()
	if r == nil {
		return []string{"The world is empty."}
	}
	lines := []string{fmt.Sprintf("%s (%s):", r.Name, r.Biome)}
	for i, loc := range r.Locations {
		marker := " "
		if i == s.locIdx {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s — %s, danger %.2f, %d folk",
			marker, i+1, loc.Name, loc.Type, loc.DangerLevel, len(loc.NPCs)))
	}
	return lines
}

func (s *Session) cmdLocation(args []string) []string {
	r := s.region()
	if r == nil {
		return []string{"The world is empty."}
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > len(r.Locations) {
			return []string{fmt.Sprintf("No location %q. Use an index from 'region'.", args[0])}
		}
		s.locIdx = n - 1
	}
	loc := s.location()
	if loc == nil {
		return []string{"Nowhere to look."}
	}

	lines := []string{
		fmt.Sprintf("%s — %s in %s", loc.Name, loc.Type, r.Name),
		fmt.Sprintf("danger %.2f, %s", loc.DangerLevel, engine.PeriodOfHour(s.Player.Hour)),
	}
	if len(loc.NPCs) > 0 {
		lines = append(lines, "Folk here:")
		for _, n := range loc.NPCs {
			tags := ""
			if n.QuestGiver {
				tags += " [quest]"
			}
			if n.HasShop {
				tags += " [shop]"
			}
			lines = append(lines, fmt.Sprintf("  %s — %s (%s)%s", n.ID, n.Name, n.Role, tags))
		}
	}
	if len(loc.Quests) > 0 {
		lines = append(lines, "Work posted:")
		for _, q := range loc.Quests {
			lines = append(lines, fmt.Sprintf("  %s — %s [%s]", q.ID, q.Title, s.Player.QuestStatus(q.ID)))
		}
	}
	return lines
}

func (s *Session) cmdNPC(args []string) []string {
	if len(args) == 0 {
		return []string{"Usage: npc <id>"}
	}
	npc := s.findNPC(args[0])
	if npc == nil {
		return []string{fmt.Sprintf("Nobody called %q here.", args[0])}
	}

	lines := []string{
		fmt.Sprintf("%s (%s, %s, level %d)", npc.Name, npc.Role, npc.Gender, npc.Level),
		fmt.Sprintf("faction: %s", npc.Faction),
		npc.Description,
		npc.Backstory,
	}
	if len(npc.Personality) > 0 {
		traits := make([]string, 0, len(npc.Personality))
		for name := range npc.Personality {
			traits = append(traits, name)
		}
		sort.Strings(traits)
		for _, name := range traits {
			lines = append(lines, fmt.Sprintf("  %s: %.2f", name, npc.Personality[name]))
		}
	}
	return lines
}

func (s *Session) cmdQuest(args []string) []string {
	if len(args) == 0 {
		return []string{"Usage: quest <id>"}
	}
	q, ok := s.Player.Defs[args[0]]
	if !ok {
		return []string{fmt.Sprintf("No quest %q.", args[0])}
	}

	lines := []string{
		fmt.Sprintf("%s [%s] — %s", q.Title, q.Category, s.Player.QuestStatus(q.ID)),
		q.Description,
	}
	for i, stage := range q.Stages {
		lines = append(lines, fmt.Sprintf("Stage %d: %s", i+1, stage.Title))
		for _, obj := range stage.Objectives {
			opt := ""
			if obj.Optional {
				opt = " (optional)"
			}
			progress := ""
			if aq, ok := s.Player.Quests[q.ID]; ok {
				progress = fmt.Sprintf(" %d/%d", aq.Progress[obj.ID], obj.Count)
			}
			lines = append(lines, fmt.Sprintf("  %s %s x%d%s%s", obj.Type, obj.Target, obj.Count, opt, progress))
		}
	}
	lines = append(lines, fmt.Sprintf("Reward: %d XP, %d gold", q.Rewards.XP, q.Rewards.Gold))
	return lines
}

func (s *Session) cmdJournal() []string {
	ids := make([]string, 0, len(s.Player.Quests))
	for id := range s.Player.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return []string{"Your journal is empty."}
	}

	lines := []string{"Journal:"}
	for _, id := range ids {
		aq := s.Player.Quests[id]
		q := s.Player.Defs[id]
		title := id
		if q != nil {
			title = q.Title
		}
		entry := fmt.Sprintf("  %s [%s]", title, aq.Status)
		if q != nil && aq.Status == types.QuestActive {
			if stage, ok := quest.CurrentStage(q, aq); ok {
				entry += " — " + stage.Title
			}
		}
		lines = append(lines, entry)
	}
	return lines
}

func (s *Session) cmdEncounters(args []string) []string {
	loc := s.location()
	if loc == nil {
		return []string{"Nowhere to roam."}
	}
	periods := []string{engine.PeriodMorning, engine.PeriodDay, engine.PeriodEvening, engine.PeriodNight}
	if len(args) > 0 {
		periods = []string{strings.ToLower(args[0])}
	}

	var lines []string
	for _, period := range periods {
		encs := loc.Encounters[period]
		if len(encs) == 0 {
			lines = append(lines, fmt.Sprintf("%s: the trail is quiet.", period))
			continue
		}
		lines = append(lines, period+":")
		for _, e := range encs {
			lines = append(lines, "  "+e.Intro)
			for _, g := range e.Enemies {
				lines = append(lines, fmt.Sprintf("    %dx %s (level %d)", g.Count, g.Enemy, g.Level))
			}
			lines = append(lines, fmt.Sprintf("    worth %d XP, %d gold", e.RewardXP, e.RewardGold))
		}
	}
	return lines
}

func (s *Session) cmdTalk(args []string) []string {
	if len(args) == 0 {
		return []string{"Usage: talk <npc id>"}
	}
	loc := s.location()
	if loc == nil {
		return []string{"Nobody around."}
	}
	npc := s.findNPC(args[0])
	if npc == nil {
		return []string{fmt.Sprintf("Nobody called %q here.", args[0])}
	}
	tree, ok := loc.Dialogue[npc.ID]
	if !ok {
		return []string{fmt.Sprintf("%s has nothing to say.", npc.Name)}
	}

	node, ok := dialogue.ResolveEntry(&tree, s.Player)
	if !ok {
		return []string{fmt.Sprintf("%s has nothing to say.", npc.Name)}
	}

	// Conversation counters update as the talk begins so that conditions
	// seen mid-conversation already reflect it.
	s.Player.Visits[npc.ID]++
	s.Player.Talked[npc.ID] = true

	s.tree = &tree
	return s.enterNode(node)
}

// stepDialogue handles input while a conversation is active: a number
// picks a choice, "leave" walks away.
func (s *Session) stepDialogue(input string) []string {
	if strings.EqualFold(input, "leave") {
		s.endConversation()
		return []string{"You tip your hat and step away."}
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(s.choices) {
		return []string{fmt.Sprintf("Pick a number between 1 and %d, or 'leave'.", len(s.choices))}
	}
	choice := s.choices[n-1]

	res, err := dialogue.Select(s.tree, choice)
	if err != nil {
		s.endConversation()
		return []string{fmt.Sprintf("Conversation broke down: %v", err)}
	}

	lines := s.Player.Apply(res.Effects)
	if res.Ended {
		s.endConversation()
		return append(lines, "The conversation ends.")
	}
	return append(lines, s.enterNode(res.Next)...)
}

// enterNode applies a node's on-enter effects, then renders its text and
// the currently available choices.
func (s *Session) enterNode(node types.DialogueNode) []string {
	s.node = node
	lines := s.Player.Apply(dialogue.EnterEffects(node))

	speaker := node.Speaker
	if speaker == "" {
		speaker = s.tree.NPCID
	}
	lines = append(lines, fmt.Sprintf("%s: %q", speaker, node.Text))

	s.choices = dialogue.AvailableChoices(s.tree, node, s.Player)
	if len(s.choices) == 0 {
		s.endConversation()
		return append(lines, "The conversation ends.")
	}
	for i, c := range s.choices {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, c.Text))
	}
	return lines
}

func (s *Session) endConversation() {
	s.tree = nil
	s.node = types.DialogueNode{}
	s.choices = nil
}

// InConversation reports whether dialogue input is expected next.
func (s *Session) InConversation() bool {
	return s.tree != nil
}

func (s *Session) cmdPrice(args []string) []string {
	if len(args) == 0 {
		return []string{"Usage: price <base> [item tags...]"}
	}
	base, err := strconv.ParseFloat(args[0], 64)
	if err != nil || base < 0 {
		return []string{fmt.Sprintf("%q is not a price.", args[0])}
	}
	tags := args[1:]

	ctx := s.pricingContext()
	quoted := price.Quote(base, tags, ctx, s.Pack.PriceModifiers)

	var applied []string
	for _, m := range s.Pack.PriceModifiers {
		if price.Applies(m, tags, ctx) {
			applied = append(applied, m.ID)
		}
	}
	lines := []string{fmt.Sprintf("base %d → %d gold", int(base), quoted)}
	if len(applied) > 0 {
		lines = append(lines, "modifiers: "+strings.Join(applied, ", "))
	}
	return lines
}

func (s *Session) pricingContext() types.PricingContext {
	ctx := types.PricingContext{
		Season:       s.Season,
		ActiveEvents: s.Player.Events,
	}
	if r := s.region(); r != nil {
		ctx.Region = r.ID
	}
	if loc := s.location(); loc != nil {
		ctx.LocationType = loc.Type
		ctx.DangerLevel = loc.DangerLevel
		ctx.Population = len(loc.NPCs) * 40
	}
	return ctx
}

func (s *Session) cmdStats() []string {
	p := s.Player
	lines := []string{
		fmt.Sprintf("level %d, hour %d (%s), %d gold", p.Level, p.Hour, engine.PeriodOfHour(p.Hour), p.Purse),
	}
	if len(p.Items) > 0 {
		items := make([]string, 0, len(p.Items))
		for id := range p.Items {
			items = append(items, id)
		}
		sort.Strings(items)
		for _, id := range items {
			lines = append(lines, fmt.Sprintf("  %dx %s", p.Items[id], id))
		}
	}
	if len(p.Rep) > 0 {
		factions := make([]string, 0, len(p.Rep))
		for f := range p.Rep {
			factions = append(factions, f)
		}
		sort.Strings(factions)
		for _, f := range factions {
			lines = append(lines, fmt.Sprintf("  %s: %+d", f, p.Rep[f]))
		}
	}
	return lines
}

func (s *Session) cmdTime(args []string) []string {
	if len(args) == 0 {
		return []string{fmt.Sprintf("hour %d (%s)", s.Player.Hour, engine.PeriodOfHour(s.Player.Hour))}
	}
	h, err := strconv.Atoi(args[0])
	if err != nil || h < 0 || h > 23 {
		return []string{fmt.Sprintf("%q is not an hour (0-23).", args[0])}
	}
	s.Player.Hour = h
	return []string{fmt.Sprintf("hour %d (%s)", h, engine.PeriodOfHour(h))}
}

// findNPC looks an NPC up by ID or name in the current location.
func (s *Session) findNPC(key string) *types.NPC {
	loc := s.location()
	if loc == nil {
		return nil
	}
	for i := range loc.NPCs {
		if loc.NPCs[i].ID == key || strings.EqualFold(loc.NPCs[i].Name, key) {
			return &loc.NPCs[i]
		}
	}
	return nil
}
