package catalog

// Defaults is the built-in roster used when no catalog file or database is configured.
func Defaults() []Entity {
	return []Entity{
		{
			ID: "aria", Name: "Aria", Class: "Mage", Rarity: RarityLegendary,
			Element: "Arcane", Faction: "Celestine", Unlocked: true,
			Popularity: 97, Power: 950,
			Poses: []string{"idle", "channel", "victory"},
			Stats: Stats{Health: 480, Attack: 92, Defense: 38, Speed: 64, Difficulty: 7},
			Abilities: []Ability{
				{Key: "P", Name: "Starlit Echo", Type: AbilityPassive, Cooldown: "-", Description: "Every third spell refunds part of its cost."},
				{Key: "Q", Name: "Prism Lance", Type: AbilityActive, Cooldown: "6s", Description: "Fires a beam that splits on the first enemy hit."},
				{Key: "R", Name: "Nova", Type: AbilityActive, Cooldown: "90s", Description: "Detonates a star around Aria after a short delay."},
			},
			Skins: []string{"Default", "Eclipse", "Winter Court"},
		},
		{
			ID: "talon", Name: "Talon", Class: "Assassin", Rarity: RarityEpic,
			Element: "Wind", Faction: "Ashen Guild", Unlocked: true,
			Popularity: 91, Power: 810,
			Poses: []string{"idle", "crouch", "strike"},
			Stats: Stats{Health: 520, Attack: 88, Defense: 44, Speed: 95, Difficulty: 8},
			Abilities: []Ability{
				{Key: "P", Name: "Blade's End", Type: AbilityPassive, Cooldown: "-", Description: "Bonus damage against slowed targets."},
				{Key: "Q", Name: "Rake", Type: AbilityActive, Cooldown: "8s", Description: "Throws blades in a fan that return to Talon."},
				{Key: "E", Name: "Assassin's Path", Type: AbilityActive, Cooldown: "12s", Description: "Vaults over the nearest wall."},
			},
			Skins: []string{"Default", "Blood Moon"},
		},
		{
			ID: "bastion", Name: "Bastion", Class: "Tank", Rarity: RarityRare,
			Element: "Earth", Faction: "Iron Vale", Unlocked: true,
			Popularity: 74, Power: 620,
			Poses: []string{"idle", "guard", "slam"},
			Stats: Stats{Health: 910, Attack: 54, Defense: 97, Speed: 31, Difficulty: 3},
			Abilities: []Ability{
				{Key: "P", Name: "Bulwark", Type: AbilityPassive, Cooldown: "-", Description: "Gains armor for each nearby ally."},
				{Key: "W", Name: "Shield Wall", Type: AbilityActive, Cooldown: "14s", Description: "Blocks projectiles in a cone."},
			},
			Skins: []string{"Default", "Obsidian"},
		},
		{
			ID: "mira", Name: "Mira", Class: "Support", Rarity: RarityRare,
			Element: "Water", Faction: "Celestine", Unlocked: false,
			Popularity: 68, Power: 540,
			Poses: []string{"idle", "heal"},
			Stats: Stats{Health: 500, Attack: 41, Defense: 52, Speed: 70, Difficulty: 4},
			Abilities: []Ability{
				{Key: "Q", Name: "Tidecall", Type: AbilityActive, Cooldown: "10s", Description: "Heals allies in a line."},
				{Key: "R", Name: "Still Waters", Type: AbilityActive, Cooldown: "100s", Description: "Freezes cooldowns of nearby allies."},
			},
			Skins: []string{"Default"},
		},
		{
			ID: "grom", Name: "Grom", Class: "Fighter", Rarity: RarityCommon,
			Element: "Fire", Faction: "Iron Vale", Unlocked: true,
			Popularity: 55, Power: 700,
			Poses: []string{"idle", "roar", "swing", "victory"},
			Stats: Stats{Health: 680, Attack: 81, Defense: 63, Speed: 48, Difficulty: 2},
			Abilities: []Ability{
				{Key: "Q", Name: "Cleave", Type: AbilityActive, Cooldown: "5s", Description: "Strikes all enemies in front."},
			},
			Skins: []string{"Default", "Molten"},
		},
		{
			ID: "sable", Name: "Sable", Class: "Marksman", Rarity: RarityEpic,
			Element: "Shadow", Faction: "Ashen Guild", Unlocked: false,
			Popularity: 83, Power: 760,
			Poses: []string{"idle", "aim"},
			Stats: Stats{Health: 450, Attack: 90, Defense: 35, Speed: 66, Difficulty: 6},
			Abilities: []Ability{
				{Key: "P", Name: "Dead Eye", Type: AbilityPassive, Cooldown: "-", Description: "Critical hits mark targets."},
				{Key: "Q", Name: "Piercing Shot", Type: AbilityActive, Cooldown: "7s", Description: "A long-range shot that passes through units."},
			},
			Skins: []string{"Default", "Noir"},
		},
		{
			ID: "oaken", Name: "Oaken", Class: "Tank", Rarity: RarityCommon,
			Element: "Nature", Faction: "Greenhold", Unlocked: true,
			Popularity: 49, Power: 580,
			Poses: nil,
			Stats: Stats{Health: 860, Attack: 47, Defense: 90, Speed: 28, Difficulty: 1},
			Abilities: []Ability{
				{Key: "P", Name: "Deep Roots", Type: AbilityPassive, Cooldown: "-", Description: "Cannot be displaced while standing still."},
			},
			Skins: []string{"Default"},
		},
		{
			ID: "lyra", Name: "Lyra", Class: "Mage", Rarity: RarityLegendary,
			Element: "Lightning", Faction: "Greenhold", Unlocked: false,
			Popularity: 88, Power: 920,
			Poses: []string{"idle", "storm", "victory"},
			Stats: Stats{Health: 470, Attack: 95, Defense: 33, Speed: 72, Difficulty: 9},
			Abilities: []Ability{
				{Key: "Q", Name: "Arc", Type: AbilityActive, Cooldown: "4s", Description: "Chains lightning between up to four targets."},
				{Key: "R", Name: "Tempest", Type: AbilityActive, Cooldown: "80s", Description: "Calls a storm that follows Lyra."},
			},
			Skins: []string{"Default", "Thunderhead"},
		},
	}
}
