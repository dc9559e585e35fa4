package content

// Loyalties is the alignment table.
var Loyalties = []Loyalty{
	{Name: "Lawful Good", Description: "Acts with compassion and always tries to do what is right and just."},
	{Name: "Neutral Good", Description: "Does the best they can to help others according to their needs."},
	{Name: "Chaotic Good", Description: "Follows their own conscience to do good, regardless of rules."},
	{Name: "Lawful Neutral", Description: "Acts as law, tradition, or a personal code directs them."},
	{Name: "True Neutral", Description: "Avoids taking sides, seeking balance in all things."},
	{Name: "Chaotic Neutral", Description: "Follows their whims, valuing their own freedom above all else."},
	{Name: "Lawful Evil", Description: "Methodically takes what they want, within a code of tradition or order."},
	{Name: "Neutral Evil", Description: "Is out for themselves, pure and simple, without honor and without variation."},
	{Name: "Chaotic Evil", Description: "Acts with arbitrary violence and is spurred by greed, hatred, or bloodlust."},
}

// Backstories is the origin table. "Custom" defers to the profile's
// free-form backstory text.
var Backstories = []Backstory{
	{Name: "Noble", Description: "You come from a wealthy, respected family, accustomed to a life of privilege and power."},
	{Name: "Outcast", Description: "Shunned by your community, you have learned to survive alone on the fringes of society."},
	{Name: "Soldier", Description: "You are a trained warrior, shaped by years of discipline and battle in a formal army."},
	{Name: "Acolyte", Description: "You spent your life in service to a temple, learning sacred rites and powerful secrets."},
	{Name: "Criminal", Description: "You have a history of breaking the law, relying on your wits and connections to get by."},
	{Name: "Folk Hero", Description: "You are a champion of the common people, hailed for your deeds of courage and kindness."},
	{Name: "Hermit", Description: "You lived in seclusion for a long time, gaining unique insights or discovering a great secret."},
	{Name: "Entertainer", Description: "You lived a life of performance, captivating audiences with your music, dance, or stories."},
	{Name: "Sailor", Description: "You spent years on the high seas, facing down storms, pirates, and bizarre sea monsters."},
	{Name: "Guild Artisan", Description: "You are a member of an artisan's guild, skilled in a particular craft and possessing influential connections."},
	{Name: "Custom", Description: "Your past is your own to write. Define the history that shaped you."},
}

// Traits is the positive personality trait table.
var Traits = []Trait{
	{Name: "Brave", Description: "You stand firm in the face of fear.", Synergies: map[string]string{
		"Class:Warrior": "Your bravery inspires allies in combat, allowing you to grant one ally advantage on their next attack roll, once per encounter.",
		"Race:Halfling": "Your courage defies your size. When a larger ally is defeated, you gain temporary hit points from a surge of protective valor.",
	}},
	{Name: "Cunning", Description: "You are clever, and find solutions others miss.", Synergies: map[string]string{
		"Class:Rogue": "Your cunning mind helps you create openings. You can use your bonus action to grant an ally advantage on their attack roll against a creature within 5 feet of you.",
		"Race:Gnome":  "Your gnomish intellect for complex problems gives you advantage on checks to disarm magical traps.",
	}},
	{Name: "Compassionate", Description: "You feel for others and try to help them.", Synergies: map[string]string{
		"Class:Cleric": "Your compassion enhances your healing. When you heal an ally, they also gain a +1 bonus to their Armor Class until their next turn.",
	}},
	{Name: "Honorable", Description: "Your word is your bond.", Synergies: map[string]string{
		"Class:Paladin": "Your strict code of honor makes your divine smites more potent against enemies who use deception and poison.",
	}},
	{Name: "Ambitious", Description: "You are driven to achieve greatness."},
	{Name: "Pious", Description: "Your faith is your guide and shield.", Synergies: map[string]string{
		"Class:Cleric":  "Your unshakeable piety allows you to reroll a 1 on any healing die.",
		"Class:Paladin": "Your faith is a literal shield. You can add your Charisma modifier to a saving throw you would otherwise fail, once per long rest.",
	}},
	{Name: "Witty", Description: "You have a clever and inventive humor.", Synergies: map[string]string{
		"Class:Bard": "Your wit sharpens your Vicious Mockery cantrip, causing it to deal an extra die of damage.",
	}},
	{Name: "Patient", Description: "You can tolerate delays without becoming annoyed.", Synergies: map[string]string{
		"Class:Ranger": "Your patience makes you an excellent ambush predator. If you remain hidden for a full round before attacking, your first attack is an automatic critical hit.",
	}},
	{Name: "Curious", Description: "You are eager to know or learn something new.", Synergies: map[string]string{
		"Class:Mage": "Your curiosity about the arcane allows you to attempt to cast a spell from a scroll even if it's not on your class's spell list.",
	}},
	{Name: "Loyal", Description: "You show firm and constant support to your allies."},
	{Name: "Stoic", Description: "You endure hardship without showing feelings or complaining.", Synergies: map[string]string{
		"Race:Dwarf": "Your stoicism, combined with Dwarven Resilience, makes you immune to fear effects.",
	}},
	{Name: "Optimistic", Description: "You are hopeful and confident about the future."},
}

// Faults is the negative personality trait table.
var Faults = []Fault{
	{Name: "Arrogant", Description: "You believe you are better than others.", Synergies: map[string]string{
		"Class:Mage": "Your arrogance in your arcane superiority gives you disadvantage on checks to identify magic created by divine casters (Clerics, Paladins).",
		"Race:Elf":   "Your elven pride makes you dismiss the concerns of 'lesser' races, giving you disadvantage on Charisma (Persuasion) checks with non-elves.",
	}},
	{Name: "Greedy", Description: "You desire wealth and possessions above all else.", Synergies: map[string]string{
		"Race:Dwarf":  "Your dwarven lust for gold is a serious affliction. You must make a Wisdom saving throw to avoid attempting to steal any valuable gems or jewelry you see.",
		"Class:Rogue": "Your greed makes you take unnecessary risks. You have disadvantage on checks to spot traps on treasure chests.",
	}},
	{Name: "Reckless", Description: "You act without thinking of the consequences.", Synergies: map[string]string{
		"Class:Warrior": "Your reckless charges leave you exposed. Enemies have advantage on their first attack against you after you move more than half your speed towards them.",
	}},
	{Name: "Suspicious", Description: "You don't trust anyone.", Synergies: map[string]string{
		"Class:Rogue": "Your paranoia makes teamwork difficult. You cannot benefit from the 'Help' action from other players.",
	}},
	{Name: "Lazy", Description: "You avoid hard work whenever possible."},
	{Name: "Vengeful", Description: "You will go to any lengths to punish those who have wronged you."},
	{Name: "Impatient", Description: "You are quickly irritated or provoked by delays.", Synergies: map[string]string{
		"Class:Mage": "Your impatience with spellcasting rituals means any spell with a casting time longer than 1 action has a chance to fail spectacularly.",
	}},
	{Name: "Pessimistic", Description: "You tend to see the worst aspect of things."},
	{Name: "Gullible", Description: "You are easily persuaded to believe something.", Synergies: map[string]string{
		"Race:Human": "Your human desire to fit in makes you especially gullible. You have disadvantage on Wisdom (Insight) checks to detect lies.",
	}},
	{Name: "Paranoid", Description: "You are unreasonably suspicious or mistrustful."},
	{Name: "Overconfident", Description: "You are excessively confident in your own abilities."},
	{Name: "Short-tempered", Description: "You have a tendency to lose your temper quickly.", Synergies: map[string]string{
		"Race:Half-Orc": "Your half-orc temper is explosive. If you take damage, you must succeed a Wisdom saving throw or be forced to attack the creature that damaged you on your next turn.",
	}},
}
