package loader

import (
	"fmt"
	"os"

	"github.com/nathoo/frontiercore/types"
	"gopkg.in/yaml.v3"
)

// yamlRange accepts either a scalar (fixed value) or a [min, max] pair.
type yamlRange struct {
	Min, Max float64
}

func (r *yamlRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		r.Min, r.Max = v, v
		return nil
	}
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("range must be a scalar or a [min, max] pair, got %d values", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r yamlRange) toRange() types.Range {
	return types.Range{Min: r.Min, Max: r.Max}
}

func (r yamlRange) toIntRange() types.IntRange {
	return types.IntRange{Min: int(r.Min), Max: int(r.Max)}
}

type yamlFile struct {
	Pack *struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		Author  string `yaml:"author"`
	} `yaml:"pack"`
	NamePools       map[string]yamlPool `yaml:"name_pools"`
	NPCTemplates    []yamlNPC           `yaml:"npc_templates"`
	QuestArchetypes []yamlArchetype     `yaml:"quest_archetypes"`
	Encounters      []yamlEncounter     `yaml:"encounters"`
	Snippets        []yamlSnippet       `yaml:"snippets"`
	PriceModifiers  []yamlModifier      `yaml:"price_modifiers"`
	Regions         []yamlRegion        `yaml:"regions"`
	Dialogues       []yamlTree          `yaml:"dialogues"`
}

type yamlPool struct {
	Male     []string `yaml:"male"`
	Female   []string `yaml:"female"`
	Neutral  []string `yaml:"neutral"`
	Surnames []string `yaml:"surnames"`
	Titles   []string `yaml:"titles"`
	Patterns []string `yaml:"patterns"`
}

type yamlNPC struct {
	ID               string               `yaml:"id"`
	Role             string               `yaml:"role"`
	Weight           int                  `yaml:"weight"`
	Factions         []string             `yaml:"factions"`
	LocationTypes    []string             `yaml:"location_types"`
	Personality      map[string]yamlRange `yaml:"personality"`
	NameOrigins      map[string]int       `yaml:"name_origins"`
	Genders          []float64            `yaml:"genders"`
	Backstories      []string             `yaml:"backstories"`
	Descriptions     []string             `yaml:"descriptions"`
	QuestGiverChance float64              `yaml:"quest_giver_chance"`
	ShopChance       float64              `yaml:"shop_chance"`
	LevelOffset      yamlRange            `yaml:"level_offset"`
}

type yamlArchetype struct {
	ID            string              `yaml:"id"`
	Category      string              `yaml:"category"`
	Weight        int                 `yaml:"weight"`
	MinLevel      int                 `yaml:"min_level"`
	LocationTypes []string            `yaml:"location_types"`
	Factions      []string            `yaml:"factions"`
	Titles        []string            `yaml:"titles"`
	Descriptions  []string            `yaml:"descriptions"`
	Stages        []yamlStage         `yaml:"stages"`
	RewardXP      yamlRange           `yaml:"reward_xp"`
	RewardGold    yamlRange           `yaml:"reward_gold"`
	Variables     map[string][]string `yaml:"variables"`
}

type yamlStage struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Objectives  []yamlObjective `yaml:"objectives"`
	RewardXP    yamlRange       `yaml:"reward_xp"`
	RewardGold  yamlRange       `yaml:"reward_gold"`
}

type yamlObjective struct {
	Type     string    `yaml:"type"`
	Target   string    `yaml:"target"`
	Count    yamlRange `yaml:"count"`
	Optional bool      `yaml:"optional"`
}

type yamlEncounter struct {
	ID         string     `yaml:"id"`
	Weight     int        `yaml:"weight"`
	Biomes     []string   `yaml:"biomes"`
	Times      []string   `yaml:"times"`
	Intros     []string   `yaml:"intros"`
	Slots      []yamlSlot `yaml:"slots"`
	RewardXP   yamlRange  `yaml:"reward_xp"`
	RewardGold yamlRange  `yaml:"reward_gold"`
}

type yamlSlot struct {
	Enemy      string    `yaml:"enemy"`
	BaseLevel  int       `yaml:"base_level"`
	Count      yamlRange `yaml:"count"`
	LevelScale float64   `yaml:"level_scale"`
}

type yamlSnippet struct {
	ID     string   `yaml:"id"`
	Slot   string   `yaml:"slot"`
	Roles  []string `yaml:"roles"`
	Weight int      `yaml:"weight"`
	Lines  []string `yaml:"lines"`
}

type yamlModifier struct {
	ID            string           `yaml:"id"`
	ItemTags      []string         `yaml:"item_tags"`
	LocationTypes []string         `yaml:"location_types"`
	Regions       []string         `yaml:"regions"`
	Conditions    []map[string]any `yaml:"conditions"`
	Multiplier    yamlRange        `yaml:"multiplier"`
}

type yamlRegion struct {
	ID            string              `yaml:"id"`
	Biome         string              `yaml:"biome"`
	Weight        int                 `yaml:"weight"`
	NamePatterns  []string            `yaml:"name_patterns"`
	NameParts     map[string][]string `yaml:"name_parts"`
	LocationCount yamlRange           `yaml:"location_count"`
	Locations     []yamlLocation      `yaml:"locations"`
}

type yamlLocation struct {
	Type         string              `yaml:"type"`
	Weight       int                 `yaml:"weight"`
	NamePatterns []string            `yaml:"name_patterns"`
	NameParts    map[string][]string `yaml:"name_parts"`
	NPCCount     yamlRange           `yaml:"npc_count"`
	Danger       yamlRange           `yaml:"danger"`
}

type yamlTree struct {
	ID      string              `yaml:"id"`
	NPC     string              `yaml:"npc"`
	Entries []yamlEntry         `yaml:"entries"`
	Nodes   map[string]yamlNode `yaml:"nodes"`
}

type yamlEntry struct {
	Node       string           `yaml:"node"`
	Priority   int              `yaml:"priority"`
	Conditions []map[string]any `yaml:"conditions"`
}

type yamlNode struct {
	Speaker string           `yaml:"speaker"`
	Text    string           `yaml:"text"`
	OnEnter []map[string]any `yaml:"on_enter"`
	Choices []yamlChoice     `yaml:"choices"`
}

type yamlChoice struct {
	Text       string           `yaml:"text"`
	Next       string           `yaml:"next"`
	Conditions []map[string]any `yaml:"conditions"`
	Effects    []map[string]any `yaml:"effects"`
}

// mergeYAMLFile decodes one YAML content file and appends its definitions
// to the pack. Lua and YAML files may freely mix within a pack directory.
func mergeYAMLFile(path string, pack *types.Pack, coll *collector) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.Pack != nil {
		pack.Name = f.Pack.Name
		pack.Version = f.Pack.Version
		pack.Author = f.Pack.Author
	}

	for origin, p := range f.NamePools {
		pack.NamePools[origin] = types.NamePool{
			Origin:   origin,
			Male:     p.Male,
			Female:   p.Female,
			Neutral:  p.Neutral,
			Surnames: p.Surnames,
			Titles:   p.Titles,
			Patterns: p.Patterns,
		}
	}

	for _, n := range f.NPCTemplates {
		pack.NPCTemplates = append(pack.NPCTemplates, yamlToNPCTemplate(n))
	}

	for _, a := range f.QuestArchetypes {
		arch, err := yamlToArchetype(a)
		if err != nil {
			return fmt.Errorf("quest archetype %s: %w", a.ID, err)
		}
		pack.QuestArchetypes = append(pack.QuestArchetypes, arch)
	}

	for _, e := range f.Encounters {
		pack.Encounters = append(pack.Encounters, yamlToEncounter(e))
	}

	for _, s := range f.Snippets {
		pack.Snippets = append(pack.Snippets, types.DialogueSnippet{
			ID: s.ID, Slot: s.Slot, Roles: s.Roles, Weight: s.Weight, Lines: s.Lines,
		})
	}

	for _, m := range f.PriceModifiers {
		mod := types.PriceModifier{
			ID:            m.ID,
			ItemTags:      m.ItemTags,
			LocationTypes: m.LocationTypes,
			Regions:       m.Regions,
			Multiplier:    m.Multiplier.toRange(),
		}
		for _, raw := range m.Conditions {
			c, err := priceCondFromMap(raw)
			if err != nil {
				coll.warnf("price modifier %s: %v, condition dropped", m.ID, err)
				continue
			}
			mod.Conditions = append(mod.Conditions, c)
		}
		pack.PriceModifiers = append(pack.PriceModifiers, mod)
	}

	for _, r := range f.Regions {
		pack.Regions = append(pack.Regions, yamlToRegion(r))
	}

	for _, t := range f.Dialogues {
		tree, err := yamlToTree(t)
		if err != nil {
			return fmt.Errorf("dialogue %s: %w", t.ID, err)
		}
		pack.Trees[t.ID] = tree
	}

	return nil
}

func yamlToNPCTemplate(n yamlNPC) types.NPCTemplate {
	t := types.NPCTemplate{
		ID:                 n.ID,
		Role:               n.Role,
		Weight:             n.Weight,
		AllowedFactions:    n.Factions,
		ValidLocationTypes: n.LocationTypes,
		Backstories:        n.Backstories,
		Descriptions:       n.Descriptions,
		QuestGiverChance:   n.QuestGiverChance,
		ShopChance:         n.ShopChance,
		LevelOffset:        n.LevelOffset.toIntRange(),
	}
	if len(n.Personality) > 0 {
		t.Personality = map[string]types.Range{}
		for trait, r := range n.Personality {
			t.Personality[trait] = r.toRange()
		}
	}
	for origin, w := range n.NameOrigins {
		t.NameOrigins = append(t.NameOrigins, types.Weighted{Value: origin, Weight: w})
	}
	sortWeighted(t.NameOrigins)
	if len(n.Genders) == 3 {
		t.GenderDistribution = [3]float64{n.Genders[0], n.Genders[1], n.Genders[2]}
	}
	return t
}

func yamlToArchetype(a yamlArchetype) (types.QuestArchetype, error) {
	arch := types.QuestArchetype{
		ID:                 a.ID,
		Category:           a.Category,
		Weight:             a.Weight,
		MinLevel:           a.MinLevel,
		ValidLocationTypes: a.LocationTypes,
		ValidFactions:      a.Factions,
		Titles:             a.Titles,
		Descriptions:       a.Descriptions,
		RewardXP:           a.RewardXP.toIntRange(),
		RewardGold:         a.RewardGold.toIntRange(),
		Variables:          a.Variables,
	}
	if len(a.Stages) == 0 {
		return arch, fmt.Errorf("no stages defined")
	}
	for _, s := range a.Stages {
		stage := types.StageTemplate{
			Title:       s.Title,
			Description: s.Description,
			RewardXP:    s.RewardXP.toIntRange(),
			RewardGold:  s.RewardGold.toIntRange(),
		}
		for _, o := range s.Objectives {
			stage.Objectives = append(stage.Objectives, types.ObjectiveTemplate{
				Type:     types.ObjectiveType(o.Type),
				Target:   o.Target,
				Count:    o.Count.toIntRange(),
				Optional: o.Optional,
			})
		}
		arch.Stages = append(arch.Stages, stage)
	}
	return arch, nil
}

func yamlToEncounter(e yamlEncounter) types.EncounterTemplate {
	enc := types.EncounterTemplate{
		ID:          e.ID,
		Weight:      e.Weight,
		ValidBiomes: e.Biomes,
		ValidTimes:  e.Times,
		Intros:      e.Intros,
		RewardXP:    e.RewardXP.toIntRange(),
		RewardGold:  e.RewardGold.toIntRange(),
	}
	for _, s := range e.Slots {
		enc.Slots = append(enc.Slots, types.EnemySlot{
			Enemy:      s.Enemy,
			BaseLevel:  s.BaseLevel,
			Count:      s.Count.toIntRange(),
			LevelScale: s.LevelScale,
		})
	}
	return enc
}

func yamlToRegion(r yamlRegion) types.RegionTemplate {
	region := types.RegionTemplate{
		ID:            r.ID,
		Biome:         r.Biome,
		Weight:        r.Weight,
		NamePatterns:  r.NamePatterns,
		NameParts:     r.NameParts,
		LocationCount: r.LocationCount.toIntRange(),
	}
	for _, l := range r.Locations {
		region.Locations = append(region.Locations, types.LocationSlot{
			Type:         l.Type,
			Weight:       l.Weight,
			NamePatterns: l.NamePatterns,
			NameParts:    l.NameParts,
			NPCCount:     l.NPCCount.toIntRange(),
			DangerLevel:  l.Danger.toRange(),
		})
	}
	return region
}

func yamlToTree(t yamlTree) (types.DialogueTree, error) {
	tree := types.DialogueTree{
		ID:    t.ID,
		NPCID: t.NPC,
		Nodes: map[string]types.DialogueNode{},
	}

	for i, e := range t.Entries {
		entry := types.EntryPoint{NodeID: e.Node, Priority: e.Priority}
		for _, raw := range e.Conditions {
			c, err := condFromMap(raw)
			if err != nil {
				return tree, fmt.Errorf("entry %d: %w", i+1, err)
			}
			entry.Conditions = append(entry.Conditions, c)
		}
		tree.Entries = append(tree.Entries, entry)
	}

	if len(t.Nodes) == 0 {
		return tree, fmt.Errorf("no nodes defined")
	}
	for id, n := range t.Nodes {
		node := types.DialogueNode{ID: id, Speaker: n.Speaker, Text: n.Text}
		for _, raw := range n.OnEnter {
			e, err := effectFromMap(raw)
			if err != nil {
				return tree, fmt.Errorf("node %s: %w", id, err)
			}
			node.OnEnter = append(node.OnEnter, e)
		}
		for i, c := range n.Choices {
			choice := types.Choice{Text: c.Text, NextNodeID: c.Next}
			for _, raw := range c.Conditions {
				cond, err := condFromMap(raw)
				if err != nil {
					return tree, fmt.Errorf("node %s choice %d: %w", id, i+1, err)
				}
				choice.Conditions = append(choice.Conditions, cond)
			}
			for _, raw := range c.Effects {
				eff, err := effectFromMap(raw)
				if err != nil {
					return tree, fmt.Errorf("node %s choice %d: %w", id, i+1, err)
				}
				choice.Effects = append(choice.Effects, eff)
			}
			node.Choices = append(node.Choices, choice)
		}
		tree.Nodes[id] = node
	}
	return tree, nil
}
