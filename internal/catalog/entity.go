package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Rarity is an ordered tier. RarityAny is only meaningful as a filter value.
type Rarity int

const (
	RarityAny Rarity = iota - 1
	RarityCommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"Common", "Rare", "Epic", "Legendary"}

func (r Rarity) String() string {
	if r == RarityAny {
		return "All"
	}
	if r < RarityCommon || int(r) >= len(rarityNames) {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Rarities lists the concrete tiers in ascending order.
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// ParseRarity accepts tier names case-insensitively. "", "any" and "all" map to RarityAny.
func ParseRarity(s string) (Rarity, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "any", "all":
		return RarityAny, nil
	}
	for i, name := range rarityNames {
		if strings.ToLower(name) == v {
			return Rarity(i), nil
		}
	}
	return RarityAny, fmt.Errorf("unknown rarity %q", s)
}

type AbilityType int

const (
	AbilityActive AbilityType = iota
	AbilityPassive
)

func (t AbilityType) String() string {
	if t == AbilityPassive {
		return "Passive"
	}
	return "Active"
}

func ParseAbilityType(s string) (AbilityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return AbilityActive, nil
	case "passive":
		return AbilityPassive, nil
	}
	return AbilityActive, fmt.Errorf("unknown ability type %q", s)
}

type Ability struct {
	Key         string
	Name        string
	Type        AbilityType
	Cooldown    string
	Description string
}

type Stats struct {
	Health     int
	Attack     int
	Defense    int
	Speed      int
	Difficulty int
}

// Entity is a selectable character. Values handed out by a Store own their slices,
// so mutating a returned Entity never reaches the store.
type Entity struct {
	ID         string
	Name       string
	Class      string
	Rarity     Rarity
	Element    string
	Faction    string
	Unlocked   bool
	Popularity float64
	Power      float64
	Poses      []string
	Stats      Stats
	Abilities  []Ability
	Skins      []string
}

func (e Entity) clone() Entity {
	e.Poses = slices.Clone(e.Poses)
	e.Abilities = slices.Clone(e.Abilities)
	e.Skins = slices.Clone(e.Skins)
	return e
}

// Pose returns the pose at idx, or "" when out of range.
func (e Entity) Pose(idx int) string {
	if idx < 0 || idx >= len(e.Poses) {
		return ""
	}
	return e.Poses[idx]
}
