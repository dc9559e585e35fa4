// Package party models the adventuring party: character profiles built
// from the content catalog, their derived d20 actors, and the prompt
// text that introduces them to the narrative backend.
package party

import (
	"fmt"
	"math"
	"strings"

	"github.com/jwebster45206/d20"

	"github.com/arcanedm/arcanedm/pkg/content"
)

// MaxTraits and MaxFaults bound character creation choices.
const (
	MaxTraits = 2
	MaxFaults = 2
)

// Attributes are the six core ability scores.
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// ToMap converts Attributes to a map for d20.Actor compatibility.
func (a *Attributes) ToMap() map[string]int {
	return map[string]int{
		"strength":     a.Strength,
		"dexterity":    a.Dexterity,
		"constitution": a.Constitution,
		"intelligence": a.Intelligence,
		"wisdom":       a.Wisdom,
		"charisma":     a.Charisma,
	}
}

// Modifier returns the standard ability modifier for a score.
func Modifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// CharacterProfile is one member of the party. All fields are fixed at
// creation except Inventory, which shop transactions mutate.
type CharacterProfile struct {
	Name                   string                `json:"characterName"`
	Race                   content.Race          `json:"race"`
	Class                  content.Class         `json:"class"`
	Loyalty                content.Loyalty       `json:"loyalty"`
	Backstory              content.Backstory     `json:"backstory"`
	CustomBackstory        string                `json:"customBackstory,omitempty"`
	Traits                 []content.Trait       `json:"traits"`
	Faults                 []content.Fault       `json:"faults"`
	Attributes             Attributes            `json:"attributes"`
	WeaponStyle            string                `json:"weaponStyle"`
	Spells                 []string              `json:"spells,omitempty"`
	EquipmentPack          content.EquipmentPack `json:"equipmentPack"`
	Inventory              []string              `json:"inventory"`
	SynergyBonus           string                `json:"synergyBonus,omitempty"`
	TraitAndFaultSynergies []string              `json:"traitAndFaultSynergies,omitempty"`
}

// Validate checks creation constraints.
func (p *CharacterProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("character name is required")
	}
	if len(p.Traits) > MaxTraits {
		return fmt.Errorf("at most %d traits allowed, got %d", MaxTraits, len(p.Traits))
	}
	if len(p.Faults) > MaxFaults {
		return fmt.Errorf("at most %d faults allowed, got %d", MaxFaults, len(p.Faults))
	}
	gear, ok := content.GearFor(p.Class.Name)
	if !ok {
		return fmt.Errorf("unknown class %q", p.Class.Name)
	}
	if gear.Spells == nil {
		if len(p.Spells) > 0 {
			return fmt.Errorf("class %s cannot learn spells", p.Class.Name)
		}
	} else if len(p.Spells) > gear.Spells.Max {
		return fmt.Errorf("class %s allows at most %d spells, got %d", p.Class.Name, gear.Spells.Max, len(p.Spells))
	}
	return nil
}

// BuildActor constructs the runtime d20 actor for attribute queries and
// rolls. HP and AC are level-one derivations from Constitution and
// Dexterity.
func (p *CharacterProfile) BuildActor() (*d20.Actor, error) {
	hp := 10 + Modifier(p.Attributes.Constitution)
	if hp < 1 {
		hp = 1
	}
	ac := 10 + Modifier(p.Attributes.Dexterity)

	actor, err := d20.NewActor(p.Name).
		WithHP(hp).
		WithAC(ac).
		WithAttributes(p.Attributes.ToMap()).
		WithCombatModifiers(nil).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor for %s: %w", p.Name, err)
	}
	return actor, nil
}

// BackstoryText returns the effective backstory, preferring the
// free-form text when the Custom origin was chosen.
func (p *CharacterProfile) BackstoryText() string {
	if p.Backstory.Name == "Custom" {
		return p.CustomBackstory
	}
	return p.Backstory.Description
}

// Summary renders the character sheet block sent to the backend in the
// opening prompt. index is the 1-based position in the party.
func (p *CharacterProfile) Summary(index int) string {
	traitNames := make([]string, len(p.Traits))
	for i, t := range p.Traits {
		traitNames[i] = t.Name
	}
	faultNames := make([]string, len(p.Faults))
	for i, f := range p.Faults {
		faultNames[i] = f.Name
	}

	attrs := fmt.Sprintf("Strength: %d, Dexterity: %d, Constitution: %d, Intelligence: %d, Wisdom: %d, Charisma: %d",
		p.Attributes.Strength, p.Attributes.Dexterity, p.Attributes.Constitution,
		p.Attributes.Intelligence, p.Attributes.Wisdom, p.Attributes.Charisma)

	spellsText := "None"
	if len(p.Spells) > 0 {
		spellsText = strings.Join(p.Spells, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Character %d:\n", index)
	fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Race: %s\n", p.Race.Name)
	fmt.Fprintf(&sb, "- Class: %s\n", p.Class.Name)
	fmt.Fprintf(&sb, "- Loyalty: %s\n", p.Loyalty.Name)
	fmt.Fprintf(&sb, "- Traits: %s\n", strings.Join(traitNames, ", "))
	fmt.Fprintf(&sb, "- Faults: %s\n", strings.Join(faultNames, ", "))
	fmt.Fprintf(&sb, "- Backstory: %s\n", p.BackstoryText())
	fmt.Fprintf(&sb, "- Attributes: %s\n", attrs)
	fmt.Fprintf(&sb, "- Racial Trait: %s\n", p.Race.RacialTrait)
	fmt.Fprintf(&sb, "- Class Feature: %s", p.Class.ClassFeature)
	if p.SynergyBonus != "" {
		fmt.Fprintf(&sb, "\n- Synergy Bonus: %s", p.SynergyBonus)
	}
	if len(p.TraitAndFaultSynergies) > 0 {
		fmt.Fprintf(&sb, "\n- Special Abilities & Flaws: %s", strings.Join(p.TraitAndFaultSynergies, ", "))
	}
	fmt.Fprintf(&sb, "\n- Weapon Style: %s", p.WeaponStyle)
	fmt.Fprintf(&sb, "\n- Spells: %s", spellsText)
	fmt.Fprintf(&sb, "\n- Inventory: %s", strings.Join(p.Inventory, ", "))
	return sb.String()
}

// Summaries joins the summary blocks of every party member.
func Summaries(profiles []CharacterProfile) string {
	blocks := make([]string, len(profiles))
	for i := range profiles {
		blocks[i] = profiles[i].Summary(i + 1)
	}
	return strings.Join(blocks, "\n\n")
}

// CampaignName derives the display name of a new campaign from the
// lead character.
func CampaignName(profiles []CharacterProfile) string {
	if len(profiles) == 0 {
		return "The Nameless Party"
	}
	return fmt.Sprintf("The %s Party", profiles[0].Name)
}

// MovementPoints derives grid travel range from the party's average
// speed, at 5 feet per square.
func MovementPoints(profiles []CharacterProfile) int {
	if len(profiles) == 0 {
		return 0
	}
	total := 0
	for _, p := range profiles {
		total += p.Race.Speed
	}
	avg := float64(total) / float64(len(profiles))
	return int(math.Round(avg / 5))
}
