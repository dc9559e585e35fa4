package content

// Classes is the full list of playable professions.
var Classes = []Class{
	{
		Name:         "Warrior",
		Description:  "A master of combat, strong and resilient. Relies on martial prowess.",
		ClassFeature: "Second Wind. You have a limited well of stamina that you can draw on to protect yourself from harm.",
		Synergies: map[string]string{
			"Dwarf":    "Your dwarven toughness combined with warrior training makes you a true bastion, granting you additional hit points.",
			"Half-Orc": "Your savage attacks are even more potent, allowing you to deal extra damage on critical hits.",
		},
	},
	{
		Name:         "Mage",
		Description:  "A wielder of arcane energies, intelligent and powerful. Casts potent spells.",
		ClassFeature: "Arcane Recovery. You have learned to regain some of your magical energy through a short rest.",
		Synergies: map[string]string{
			"Elf":   "Your elven mind is naturally attuned to the arcane, granting you an additional cantrip.",
			"Gnome": "Your inventive nature allows you to substitute esoteric components for your spells more easily.",
		},
	},
	{
		Name:         "Rogue",
		Description:  "A creature of shadow, agile and cunning. Excels in stealth and trickery.",
		ClassFeature: "Sneak Attack. You know how to strike subtly and exploit a foe's distraction, dealing extra damage.",
		Synergies: map[string]string{
			"Halfling": "Your natural stealth and luck make you almost invisible in the shadows, giving you an edge on stealth checks.",
			"Tiefling": "Your infernal legacy grants you the ability to cast the Darkness spell once per day, creating a perfect environment for your roguish talents.",
		},
	},
	{
		Name:         "Cleric",
		Description:  "A devout follower of a deity, channeling divine power for healing and protection.",
		ClassFeature: "Channel Divinity. You can channel divine energy to fuel magical effects, such as turning undead.",
		Synergies: map[string]string{
			"Aasimar": "Your celestial blood resonates with your divine magic, amplifying your healing spells.",
			"Human":   "Your versatile nature allows you to be proficient in heavy armor, making you a tougher front-line support.",
		},
	},
	{
		Name:         "Ranger",
		Description:  "A skilled hunter and tracker, at home in the wilderness with a loyal animal companion.",
		ClassFeature: "Favored Enemy. You have significant experience studying, tracking, hunting, and even talking to a certain type of enemy.",
		Synergies: map[string]string{
			"Elf":       "You have advantage on saving throws against being charmed, and magic can't put you to sleep. Your woodland home makes you a master tracker.",
			"Genasi":    "Your elemental nature grants you resistance to a damage type related to your element, making you a hardier survivalist.",
			"Thri-kreen": "Your natural camouflage and survival instincts make you an apex predator in any environment, granting expertise in Survival checks.",
		},
	},
	{
		Name:         "Bard",
		Description:  "A charismatic performer whose music and words can inspire allies and mesmerize foes.",
		ClassFeature: "Bardic Inspiration. You can inspire others through stirring words or music, giving them a bonus on a roll.",
		Synergies: map[string]string{
			"Tiefling": "Your natural charm is enhanced, giving you an edge in persuasive performances.",
			"Half-Orc": "Your powerful voice can be used for booming war chants, giving your inspiration a more intimidating effect.",
		},
	},
	{
		Name:         "Paladin",
		Description:  "A holy warrior bound by an oath, a beacon of hope against the forces of darkness.",
		ClassFeature: "Divine Smite. When you hit a creature with a melee weapon attack, you can expend one spell slot to deal radiant damage to the target, in addition to the weapon's damage.",
		Synergies: map[string]string{
			"Dragonborn": "Your draconic ancestry can be channeled into your smites, changing the damage type to match your breath weapon.",
			"Aasimar":    "Your celestial nature empowers your Lay on Hands, allowing you to heal more wounds.",
		},
	},
	{
		Name:         "Druid",
		Description:  "A guardian of the natural world, able to shapeshift and command the power of nature.",
		ClassFeature: "Wild Shape. As an action, you can magically assume the shape of a beast that you have seen before.",
		Synergies: map[string]string{
			"Firbolg": "Your connection to the forest is profound, granting you the ability to speak with small beasts at will.",
			"Genasi":  "Your Wild Shapes can take on elemental characteristics, such as a fire-resistant bear or a swimming badger.",
		},
	},
	{
		Name:         "Monk",
		Description:  "A master of martial arts, using disciplined control of their body as a deadly weapon.",
		ClassFeature: "Ki. Your training harnesses the mystic energy of ki. You can use it to fuel special abilities like Flurry of Blows or Patient Defense.",
		Synergies: map[string]string{
			"Elf":       "Your elven grace makes your movements more fluid, increasing your base speed.",
			"Human":     "Your adaptability allows you to learn an additional martial discipline from a monastery.",
			"Thri-kreen": "Your multiple limbs can be used in your martial arts, allowing you to make an additional unarmed strike as a bonus action once per combat.",
		},
	},
	{
		Name:         "Sorcerer",
		Description:  "A spellcaster who draws power from an innate gift or a draconic bloodline.",
		ClassFeature: "Metamagic. You can twist your spells to suit your needs, such as changing a spell's range or making it more subtle.",
		Synergies: map[string]string{
			"Dragonborn": "If your sorcerous origin is Draconic Bloodline, your powers are amplified, granting you a stronger connection to your draconic ancestor.",
			"Aasimar":    "Your magic can manifest with a divine, radiant quality, allowing you to change the damage type of certain spells to radiant.",
		},
	},
	{
		Name:         "Warlock",
		Description:  "A magic-user who gains power through a pact with a powerful otherworldly entity.",
		ClassFeature: "Pact Magic. Your arcane research and the magic bestowed on you by your patron have given you a facility with spells.",
		Synergies: map[string]string{
			"Tiefling": "Your infernal heritage may be tied to your patron, giving you a deeper understanding and more potent invocations.",
			"Gnome":    "Your patron finds your inquisitive nature amusing, occasionally granting you cryptic clues about ancient artifacts.",
		},
	},
}
