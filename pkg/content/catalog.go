// Package content holds the static campaign catalog: playable races and
// classes, loyalties, backstories, traits, faults, starting gear, the
// world maps, and the ambiance music table. Everything here is fixed at
// build time; live campaign data never mutates it.
package content

// Race is a playable ancestry.
type Race struct {
	Name            string
	Description     string
	AttributeBonuses map[string]int
	RacialTrait     string
	Speed           int // feet per turn, drives grid movement points
}

// Class is a playable profession.
type Class struct {
	Name         string
	Description  string
	ClassFeature string
	Synergies    map[string]string // race name -> synergy text
}

// Loyalty is a character alignment.
type Loyalty struct {
	Name        string
	Description string
}

// Backstory is a character origin. The "Custom" entry signals that the
// profile carries free-form backstory text instead.
type Backstory struct {
	Name        string
	Description string
}

// Trait is a positive personality trait. Synergy keys are prefixed
// "Class:" or "Race:".
type Trait struct {
	Name        string
	Description string
	Synergies   map[string]string
}

// Fault is a negative personality trait, with the same synergy keying
// as Trait.
type Fault struct {
	Name        string
	Description string
	Synergies   map[string]string
}

// EquipmentPack is a named bundle of starting items.
type EquipmentPack struct {
	Name  string
	Items []string
}

// Spell is a castable option offered during gear selection.
type Spell struct {
	Name        string
	Description string
}

// SpellChoices bounds how many spells a class picks at creation.
type SpellChoices struct {
	List []Spell
	Max  int
}

// GearOption is the starting equipment menu for one class. Spells is
// nil for non-casters.
type GearOption struct {
	WeaponStyles   []string
	EquipmentPacks []EquipmentPack
	Spells         *SpellChoices
}

// AttributeNames lists the six core attributes in standard order.
var AttributeNames = []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}

// StandardAttributeArray is the point spread assigned during creation.
var StandardAttributeArray = []int{15, 14, 13, 12, 10, 8}

// FindRace returns the race with the given name.
func FindRace(name string) (Race, bool) {
	for _, r := range Races {
		if r.Name == name {
			return r, true
		}
	}
	return Race{}, false
}

// FindClass returns the class with the given name.
func FindClass(name string) (Class, bool) {
	for _, c := range Classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// FindLoyalty returns the loyalty with the given name.
func FindLoyalty(name string) (Loyalty, bool) {
	for _, l := range Loyalties {
		if l.Name == name {
			return l, true
		}
	}
	return Loyalty{}, false
}

// FindBackstory returns the backstory with the given name.
func FindBackstory(name string) (Backstory, bool) {
	for _, b := range Backstories {
		if b.Name == name {
			return b, true
		}
	}
	return Backstory{}, false
}

// FindTrait returns the trait with the given name.
func FindTrait(name string) (Trait, bool) {
	for _, t := range Traits {
		if t.Name == name {
			return t, true
		}
	}
	return Trait{}, false
}

// FindFault returns the fault with the given name.
func FindFault(name string) (Fault, bool) {
	for _, f := range Faults {
		if f.Name == name {
			return f, true
		}
	}
	return Fault{}, false
}

// GearFor returns the gear menu for a class name.
func GearFor(className string) (GearOption, bool) {
	g, ok := GearOptions[className]
	return g, ok
}
