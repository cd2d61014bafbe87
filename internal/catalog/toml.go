package catalog

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

type fileCatalog struct {
	Characters []fileEntity `toml:"character"`
}

type fileEntity struct {
	ID         string        `toml:"id"`
	Name       string        `toml:"name"`
	Class      string        `toml:"class"`
	Rarity     string        `toml:"rarity"`
	Element    string        `toml:"element"`
	Faction    string        `toml:"faction"`
	Unlocked   bool          `toml:"unlocked"`
	Popularity float64       `toml:"popularity"`
	Power      float64       `toml:"power"`
	Poses      []string      `toml:"poses"`
	Skins      []string      `toml:"skins"`
	Stats      fileStats     `toml:"stats"`
	Abilities  []fileAbility `toml:"ability"`
}

type fileStats struct {
	Health     int `toml:"health"`
	Attack     int `toml:"attack"`
	Defense    int `toml:"defense"`
	Speed      int `toml:"speed"`
	Difficulty int `toml:"difficulty"`
}

type fileAbility struct {
	Key         string `toml:"key"`
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Cooldown    string `toml:"cooldown"`
	Description string `toml:"description"`
}

// DecodeTOML reads a catalog file made of [[character]] tables.
func DecodeTOML(r io.Reader) ([]Entity, error) {
	var raw fileCatalog
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	out := make([]Entity, 0, len(raw.Characters))
	for i, c := range raw.Characters {
		rarity, err := ParseRarity(c.Rarity)
		if err != nil {
			return nil, fmt.Errorf("character %d (%s): %w", i, c.ID, err)
		}
		if rarity == RarityAny {
			rarity = RarityCommon
		}
		e := Entity{
			ID:         c.ID,
			Name:       c.Name,
			Class:      c.Class,
			Rarity:     rarity,
			Element:    c.Element,
			Faction:    c.Faction,
			Unlocked:   c.Unlocked,
			Popularity: c.Popularity,
			Power:      c.Power,
			Poses:      c.Poses,
			Skins:      c.Skins,
			Stats: Stats{
				Health:     c.Stats.Health,
				Attack:     c.Stats.Attack,
				Defense:    c.Stats.Defense,
				Speed:      c.Stats.Speed,
				Difficulty: c.Stats.Difficulty,
			},
		}
		for _, a := range c.Abilities {
			typ, err := ParseAbilityType(a.Type)
			if err != nil {
				return nil, fmt.Errorf("character %d (%s) ability %s: %w", i, c.ID, a.Key, err)
			}
			e.Abilities = append(e.Abilities, Ability{
				Key:         a.Key,
				Name:        a.Name,
				Type:        typ,
				Cooldown:    a.Cooldown,
				Description: a.Description,
			})
		}
		out = append(out, e)
	}
	return out, nil
}
