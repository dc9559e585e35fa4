package party

import "github.com/arcanedm/arcanedm/pkg/content"

func mustRace(name string) content.Race {
	r, ok := content.FindRace(name)
	if !ok {
		panic("unknown race: " + name)
	}
	return r
}

func mustClass(name string) content.Class {
	c, ok := content.FindClass(name)
	if !ok {
		panic("unknown class: " + name)
	}
	return c
}

func mustLoyalty(name string) content.Loyalty {
	l, ok := content.FindLoyalty(name)
	if !ok {
		panic("unknown loyalty: " + name)
	}
	return l
}

func mustBackstory(name string) content.Backstory {
	b, ok := content.FindBackstory(name)
	if !ok {
		panic("unknown backstory: " + name)
	}
	return b
}

func mustTraits(names ...string) []content.Trait {
	traits := make([]content.Trait, len(names))
	for i, n := range names {
		t, ok := content.FindTrait(n)
		if !ok {
			panic("unknown trait: " + n)
		}
		traits[i] = t
	}
	return traits
}

func mustFaults(names ...string) []content.Fault {
	faults := make([]content.Fault, len(names))
	for i, n := range names {
		f, ok := content.FindFault(n)
		if !ok {
			panic("unknown fault: " + n)
		}
		faults[i] = f
	}
	return faults
}

func mustPack(className, packName string) content.EquipmentPack {
	gear, ok := content.GearFor(className)
	if !ok {
		panic("unknown class: " + className)
	}
	for _, p := range gear.EquipmentPacks {
		if p.Name == packName {
			return p
		}
	}
	panic("unknown pack " + packName + " for class " + className)
}

func startingInventory(pack content.EquipmentPack) []string {
	inv := make([]string, len(pack.Items))
	copy(inv, pack.Items)
	return inv
}

// Prebuilt returns ready-to-play character profiles. A fresh slice is
// built on every call because campaigns mutate profile inventories.
func Prebuilt() []CharacterProfile {
	valeriusPack := mustPack("Warrior", "Dungeoneer's Pack")
	lyraPack := mustPack("Ranger", "Explorer's Pack")
	zantherPack := mustPack("Mage", "Scholar's Pack")
	seraphinaPack := mustPack("Paladin", "Priest's Pack")

	return []CharacterProfile{
		{
			Name:          "Valerius Ironhand",
			Race:          mustRace("Dwarf"),
			Class:         mustClass("Warrior"),
			Loyalty:       mustLoyalty("Lawful Good"),
			Backstory:     mustBackstory("Soldier"),
			Traits:        mustTraits("Brave", "Loyal"),
			Faults:        mustFaults("Suspicious", "Short-tempered"),
			Attributes:    Attributes{Strength: 15, Dexterity: 10, Constitution: 14, Intelligence: 8, Wisdom: 12, Charisma: 13},
			WeaponStyle:   "Sword and Shield",
			EquipmentPack: valeriusPack,
			Inventory:     startingInventory(valeriusPack),
			SynergyBonus:  mustClass("Warrior").Synergies["Dwarf"],
			TraitAndFaultSynergies: []string{
				"Your bravery inspires allies in combat, allowing you to grant one ally advantage on their next attack roll, once per encounter.",
				"Your stoicism, combined with Dwarven Resilience, makes you immune to fear effects.",
			},
		},
		{
			Name:          "Lyra Swiftwind",
			Race:          mustRace("Elf"),
			Class:         mustClass("Ranger"),
			Loyalty:       mustLoyalty("Chaotic Good"),
			Backstory:     mustBackstory("Outcast"),
			Traits:        mustTraits("Patient", "Curious"),
			Faults:        mustFaults("Reckless", "Pessimistic"),
			Attributes:    Attributes{Strength: 10, Dexterity: 15, Constitution: 12, Intelligence: 13, Wisdom: 14, Charisma: 8},
			WeaponStyle:   "Longbow and Shortsword",
			EquipmentPack: lyraPack,
			Inventory:     startingInventory(lyraPack),
			SynergyBonus:  mustClass("Ranger").Synergies["Elf"],
			TraitAndFaultSynergies: []string{
				"Your patience makes you an excellent ambush predator. If you remain hidden for a full round before attacking, your first attack is an automatic critical hit.",
			},
		},
		{
			Name:          "Zanther the Magnificent",
			Race:          mustRace("Gnome"),
			Class:         mustClass("Mage"),
			Loyalty:       mustLoyalty("Chaotic Neutral"),
			Backstory:     mustBackstory("Guild Artisan"),
			Traits:        mustTraits("Witty", "Ambitious"),
			Faults:        mustFaults("Arrogant", "Greedy"),
			Attributes:    Attributes{Strength: 8, Dexterity: 13, Constitution: 12, Intelligence: 15, Wisdom: 10, Charisma: 14},
			WeaponStyle:   "Quarterstaff",
			Spells:        []string{"Magic Missile", "Fire Bolt", "Shield"},
			EquipmentPack: zantherPack,
			Inventory:     startingInventory(zantherPack),
			SynergyBonus:  mustClass("Mage").Synergies["Gnome"],
			TraitAndFaultSynergies: []string{
				"Your gnomish intellect for complex problems gives you advantage on checks to disarm magical traps.",
				"Your arrogance in your arcane superiority gives you disadvantage on checks to identify magic created by divine casters (Clerics, Paladins).",
			},
		},
		{
			Name:          "Seraphina Lightbringer",
			Race:          mustRace("Aasimar"),
			Class:         mustClass("Paladin"),
			Loyalty:       mustLoyalty("Lawful Good"),
			Backstory:     mustBackstory("Acolyte"),
			Traits:        mustTraits("Honorable", "Compassionate"),
			Faults:        mustFaults("Overconfident", "Gullible"),
			Attributes:    Attributes{Strength: 14, Dexterity: 8, Constitution: 13, Intelligence: 10, Wisdom: 12, Charisma: 15},
			WeaponStyle:   "Longsword and Shield",
			Spells:        []string{"Divine Favor"},
			EquipmentPack: seraphinaPack,
			Inventory:     startingInventory(seraphinaPack),
			SynergyBonus:  mustClass("Paladin").Synergies["Aasimar"],
			TraitAndFaultSynergies: []string{
				"Your strict code of honor makes your divine smites more potent against enemies who use deception and poison.",
			},
		},
	}
}
