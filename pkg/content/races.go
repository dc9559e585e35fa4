package content

// Races is the full list of playable ancestries.
var Races = []Race{
	{
		Name:             "Human",
		Description:      "Ambitious and versatile, humans are found everywhere, their short lives driving them to greatness.",
		AttributeBonuses: map[string]int{"Strength": 1, "Dexterity": 1, "Constitution": 1, "Intelligence": 1, "Wisdom": 1, "Charisma": 1},
		RacialTrait:      "Resourcefulness. Humans are adaptable and can quickly learn new skills, often finding surprising solutions to problems.",
		Speed:            30,
	},
	{
		Name:             "Elf",
		Description:      "Graceful and perceptive, elves live for centuries, mastering magic and swordplay.",
		AttributeBonuses: map[string]int{"Dexterity": 2},
		RacialTrait:      "Fey Ancestry. You have advantage on saving throws against being charmed, and magic can't put you to sleep.",
		Speed:            30,
	},
	{
		Name:             "Dwarf",
		Description:      "Resilient artisans of the mountain, with a deep connection to stone, steel, and tradition.",
		AttributeBonuses: map[string]int{"Constitution": 2},
		RacialTrait:      "Dwarven Resilience. You have advantage on saving throws against poison, and you have resistance against poison damage.",
		Speed:            25,
	},
	{
		Name:             "Halfling",
		Description:      "Cheerful and curious, these small folk are known for their uncanny luck and love of comfort.",
		AttributeBonuses: map[string]int{"Dexterity": 2},
		RacialTrait:      "Lucky. When you roll a 1 on an attack roll, ability check, or saving throw, you can reroll the die and must use the new roll.",
		Speed:            25,
	},
	{
		Name:             "Dragonborn",
		Description:      "A proud, honorable race of draconic humanoids who value clan and skill above all else.",
		AttributeBonuses: map[string]int{"Strength": 2, "Charisma": 1},
		RacialTrait:      "Breath Weapon. You can use your action to exhale destructive energy. The type is determined by your draconic ancestry.",
		Speed:            30,
	},
	{
		Name:             "Tiefling",
		Description:      "Descended from an infernal bloodline, tieflings are charismatic and cunning survivors.",
		AttributeBonuses: map[string]int{"Charisma": 2, "Intelligence": 1},
		RacialTrait:      "Infernal Legacy. You know the Thaumaturgy cantrip. Once you reach 3rd level, you can cast the Hellish Rebuke spell as a 2nd-level spell once per day.",
		Speed:            30,
	},
	{
		Name:             "Gnome",
		Description:      "Inventive and whimsical, gnomes are small in stature but large in intellect and creativity.",
		AttributeBonuses: map[string]int{"Intelligence": 2},
		RacialTrait:      "Gnome Cunning. You have advantage on all Intelligence, Wisdom, and Charisma saving throws against magic.",
		Speed:            25,
	},
	{
		Name:             "Half-Orc",
		Description:      "Combining human and orcish traits, they are often passionate individuals with formidable strength.",
		AttributeBonuses: map[string]int{"Strength": 2, "Constitution": 1},
		RacialTrait:      "Relentless Endurance. When you are reduced to 0 hit points but not killed outright, you can drop to 1 hit point instead. You can't use this feature again until you finish a long rest.",
		Speed:            30,
	},
	{
		Name:             "Aasimar",
		Description:      "Celestial champions touched by the powers of Mount Celestia, born to serve as guardians.",
		AttributeBonuses: map[string]int{"Charisma": 2},
		RacialTrait:      "Celestial Resistance. You have resistance to necrotic damage and radiant damage.",
		Speed:            30,
	},
	{
		Name:             "Genasi",
		Description:      "Humanoids infused with the power of the elements, their appearance often hinting at their lineage.",
		AttributeBonuses: map[string]int{"Constitution": 2},
		RacialTrait:      "Elemental Manifestation. Your body is infused with an element (Air, Earth, Fire, or Water), granting you a cantrip and damage resistance related to that element.",
		Speed:            30,
	},
	{
		Name:             "Goliath",
		Description:      "Massive and powerful mountain dwellers, driven by a competitive spirit and a sense of fair play.",
		AttributeBonuses: map[string]int{"Strength": 2, "Constitution": 1},
		RacialTrait:      "Stone's Endurance. You can focus yourself to occasionally shrug off injury. When you take damage, you can use your reaction to roll a d12. Add your Constitution modifier to the number rolled, and reduce the damage by that total.",
		Speed:            30,
	},
	{
		Name:             "Firbolg",
		Description:      "Wise and gentle giants of the forest, who prefer a peaceful and hidden existence.",
		AttributeBonuses: map[string]int{"Wisdom": 2, "Strength": 1},
		RacialTrait:      "Firbolg Magic. You can cast Detect Magic and Disguise Self with this trait. You can also become invisible as a bonus action.",
		Speed:            30,
	},
	{
		Name:             "Thri-kreen",
		Description:      "Insectoid nomads of the deserts and plains, known for their psionic abilities and hunting prowess.",
		AttributeBonuses: map[string]int{"Dexterity": 2, "Wisdom": 1},
		RacialTrait:      "Chameleon Carapace. You can change the color of your carapace to match your surroundings, granting advantage on Stealth checks. You also do not need to sleep.",
		Speed:            35,
	},
}
