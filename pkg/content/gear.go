package content

var (
	dungeoneersPack = EquipmentPack{Name: "Dungeoneer's Pack", Items: []string{"Backpack", "Crowbar", "Hammer", "10 pitons", "10 torches", "Tinderbox", "10 days of rations", "Waterskin", "50 feet of hempen rope"}}
	explorersPack   = EquipmentPack{Name: "Explorer's Pack", Items: []string{"Backpack", "Bedroll", "Mess kit", "Tinderbox", "10 torches", "10 days of rations", "Waterskin", "50 feet of hempen rope"}}
	scholarsPack    = EquipmentPack{Name: "Scholar's Pack", Items: []string{"Backpack", "Book of lore", "Bottle of ink", "Ink pen", "10 sheets of parchment", "Little bag of sand", "Small knife"}}
	priestsPack     = EquipmentPack{Name: "Priest's Pack", Items: []string{"Backpack", "Blanket", "10 candles", "Tinderbox", "Alms box", "2 blocks of incense", "Censer", "Vestments", "2 days of rations", "Waterskin"}}
	burglarsPack    = EquipmentPack{Name: "Burglar's Pack", Items: []string{"Backpack", "Bag of 1,000 ball bearings", "10 feet of string", "Bell", "5 candles", "Crowbar", "Hammer", "Hooded lantern", "2 flasks of oil", "5 days of rations", "Tinderbox", "Waterskin", "50 feet of hempen rope"}}
	diplomatsPack   = EquipmentPack{Name: "Diplomat's Pack", Items: []string{"Chest", "2 cases for maps and scrolls", "Set of fine clothes", "Bottle of ink", "Ink pen", "Lamp", "2 flasks of oil", "5 sheets of paper", "Vial of perfume", "Sealing wax", "Soap"}}
	entertainersPack = EquipmentPack{Name: "Entertainer's Pack", Items: []string{"Backpack", "Bedroll", "2 costumes", "5 candles", "5 days of rations", "Waterskin", "Disguise kit"}}
)

// GearOptions maps class name to its starting equipment menu.
var GearOptions = map[string]GearOption{
	"Warrior": {
		WeaponStyles:   []string{"Sword and Shield", "Greatsword", "Dual Wielding Axes", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{dungeoneersPack, explorersPack},
	},
	"Mage": {
		WeaponStyles:   []string{"Quarterstaff", "Dagger", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{scholarsPack, explorersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Magic Missile", Description: "You create three magical darts. Each dart hits a creature of your choice that you can see within range and deals 1d4+1 force damage."},
				{Name: "Fire Bolt", Description: "You hurl a mote of fire at a creature or object within range, dealing fire damage."},
				{Name: "Ray of Frost", Description: "A frigid beam of blue-white light streaks toward a creature, dealing cold damage and reducing its speed."},
				{Name: "Shield", Description: "An invisible barrier of magical force appears and protects you. Until the start of your next turn, you have a +5 bonus to AC."},
				{Name: "Sleep", Description: "You send creatures into a magical slumber. Roll 5d8; the total is how many hit points of creatures this spell can affect."},
				{Name: "Detect Magic", Description: "For the duration, you sense the presence of magic within 30 feet of you. If you sense magic in this way, you can use your action to see a faint aura around any visible creature or object in the area that bears magic."},
			},
			Max: 3,
		},
	},
	"Rogue": {
		WeaponStyles:   []string{"Dual Daggers", "Shortbow", "Rapier", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{burglarsPack, dungeoneersPack},
	},
	"Cleric": {
		WeaponStyles:   []string{"Mace and Shield", "Warhammer", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{priestsPack, explorersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Cure Wounds", Description: "A creature you touch regains a number of hit points equal to 1d8 + your spellcasting ability modifier."},
				{Name: "Guiding Bolt", Description: "A flash of light streaks toward a creature of your choice. Make a ranged spell attack. On a hit, the target takes 4d6 radiant damage, and the next attack roll made against this target before the end of your next turn has advantage."},
				{Name: "Sanctuary", Description: "You ward a creature within range against attack. Until the spell ends, any creature who targets the warded creature with an attack or a harmful spell must first make a Wisdom saving throw."},
				{Name: "Bless", Description: "You bless up to three creatures of your choice within range. Whenever a target makes an attack roll or a saving throw before the spell ends, the target can roll a d4 and add the number rolled to the attack roll or saving throw."},
				{Name: "Shield of Faith", Description: "A shimmering field appears and surrounds a creature of your choice within range, granting it a +2 bonus to AC for the duration."},
			},
			Max: 2,
		},
	},
	"Ranger": {
		WeaponStyles:   []string{"Longbow and Shortsword", "Dual Scimitars", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{explorersPack, dungeoneersPack},
	},
	"Bard": {
		WeaponStyles:   []string{"Rapier", "Longsword", "Lute (as club)", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{diplomatsPack, entertainersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Vicious Mockery", Description: "You unleash a string of insults at a creature. If it can hear you, it must make a Wisdom saving throw or take 1d4 psychic damage and have disadvantage on its next attack roll."},
				{Name: "Healing Word", Description: "A creature of your choice that you can see within range regains hit points equal to 1d4 + your spellcasting ability modifier. This spell has no effect on undead or constructs."},
				{Name: "Charm Person", Description: "You attempt to charm a humanoid you can see within range. It must make a Wisdom saving throw, and does so with advantage if you or your companions are fighting it."},
				{Name: "Tasha's Hideous Laughter", Description: "A creature of your choice that you can see within range perceives everything as hilariously funny and falls into fits of laughter if this spell affects it."},
			},
			Max: 2,
		},
	},
	"Paladin": {
		WeaponStyles:   []string{"Longsword and Shield", "Maul", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{priestsPack, explorersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Divine Favor", Description: "Your prayer empowers you with divine radiance. Until the spell ends, your weapon attacks deal an extra 1d4 radiant damage on a hit."},
				{Name: "Protection from Evil and Good", Description: "Until the spell ends, one willing creature you touch is protected against certain types of creatures: aberrations, celestials, elementals, fey, fiends, and undead."},
				{Name: "Thunderous Smite", Description: "The first time you hit with a melee weapon attack during this spell's duration, your weapon rings with thunder that is audible within 300 feet of you, and the attack deals an extra 2d6 thunder damage to the target."},
			},
			Max: 1,
		},
	},
	"Druid": {
		WeaponStyles:   []string{"Scimitar and Shield", "Wooden Staff", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{explorersPack, scholarsPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Entangle", Description: "Grasping weeds and vines sprout from the ground in a 20-foot square. For the duration, these plants turn the ground in the area into difficult terrain."},
				{Name: "Thorn Whip", Description: "You create a long, vine-like whip that lashes out at your command toward a creature in range. Make a melee spell attack against the target. If the attack hits, the creature takes 1d6 piercing damage, and if the creature is Large or smaller, you pull the creature up to 10 feet closer to you."},
				{Name: "Goodberry", Description: "Up to ten berries appear in your hand and are infused with magic for the duration. A creature can use its action to eat one berry. Eating a berry restores 1 hit point, and the berry provides enough nourishment to sustain a creature for one day."},
				{Name: "Speak with Animals", Description: "You gain the ability to comprehend and verbally communicate with beasts for the duration."},
			},
			Max: 2,
		},
	},
	"Monk": {
		WeaponStyles:   []string{"Unarmed Strikes", "Shortsword", "Quarterstaff", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{dungeoneersPack, explorersPack},
	},
	"Sorcerer": {
		WeaponStyles:   []string{"Dagger", "Light Crossbow", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{explorersPack, dungeoneersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Chromatic Orb", Description: "You hurl a 4-inch-diameter sphere of energy at a creature. You choose acid, cold, fire, lightning, poison, or thunder for the type of orb you create, and then make a ranged spell attack against the target."},
				{Name: "Mage Armor", Description: "You touch a willing creature who isn't wearing armor, and a protective magical force surrounds it until the spell ends. The target's base AC becomes 13 + its Dexterity modifier."},
				{Name: "Burning Hands", Description: "As you hold your hands with thumbs touching and fingers spread, a thin sheet of flames shoots forth from your outstretched fingertips. Each creature in a 15-foot cone must make a Dexterity saving throw."},
				{Name: "Feather Fall", Description: "Choose up to five falling creatures within range. A falling creature's rate of descent slows to 60 feet per round until the spell ends."},
			},
			Max: 2,
		},
	},
	"Warlock": {
		WeaponStyles:   []string{"Dagger", "Light Crossbow", "Custom Weapon"},
		EquipmentPacks: []EquipmentPack{scholarsPack, dungeoneersPack},
		Spells: &SpellChoices{
			List: []Spell{
				{Name: "Eldritch Blast", Description: "A beam of crackling energy streaks toward a creature within range. Make a ranged spell attack against the target. On a hit, the target takes 1d10 force damage."},
				{Name: "Hex", Description: "You place a curse on a creature that you can see within range. Until the spell ends, you deal an extra 1d6 necrotic damage to the target whenever you hit it with an attack."},
				{Name: "Armor of Agathys", Description: "A protective magical force surrounds you, manifesting as a spectral frost that covers you and your gear. You gain 5 temporary hit points for the duration. If a creature hits you with a melee attack while you have these hit points, the creature takes 5 cold damage."},
				{Name: "Hellish Rebuke", Description: "You point your finger, and the creature that damaged you is momentarily surrounded by hellish flames. The creature must make a Dexterity saving throw. It takes 2d10 fire damage on a failed save, or half as much damage on a successful one."},
			},
			Max: 2,
		},
	},
}
