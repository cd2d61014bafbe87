package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rosterpick/internal/catalog"
)

func fixture() []catalog.Entity {
	return []catalog.Entity{
		{ID: "a", Name: "Aria", Class: "Mage", Rarity: catalog.RarityLegendary, Unlocked: true, Power: 950, Popularity: 70},
		{ID: "b", Name: "bastion", Class: "Tank", Rarity: catalog.RarityRare, Unlocked: true, Power: 620, Popularity: 90},
		{ID: "c", Name: "Cinder", Class: "Mage", Rarity: catalog.RarityRare, Unlocked: false, Power: 620, Popularity: 70},
		{ID: "d", Name: "Brakk", Class: "Tank", Rarity: catalog.RarityCommon, Unlocked: false, Power: 810, Popularity: 70},
	}
}

func TestVisibleConjunctionMatchesMatch(t *testing.T) {
	t.Parallel()

	entities := fixture()
	classes := []string{AnyClass, "", "Mage", "Tank", "Nope"}
	rarities := append([]catalog.Rarity{catalog.RarityAny}, catalog.Rarities()...)
	states := []Tristate{Any, Yes, No}

	for _, class := range classes {
		for _, rarity := range rarities {
			for _, unlocked := range states {
				c := Criteria{Class: class, Rarity: rarity, Unlocked: unlocked}
				got := Visible(entities, c, SortInsertion)

				var want []string
				for _, e := range entities {
					classOK := class == AnyClass || class == "" || e.Class == class
					rarityOK := rarity == catalog.RarityAny || e.Rarity == rarity
					unlockedOK := unlocked == Any || (unlocked == Yes) == e.Unlocked
					if classOK && rarityOK && unlockedOK {
						want = append(want, e.ID)
					}
				}
				if len(want) == 0 {
					require.Empty(t, got, "criteria %+v", c)
					continue
				}
				require.Equal(t, want, IDs(got), "criteria %+v", c)
			}
		}
	}
}

func TestVisibleSortKeys(t *testing.T) {
	t.Parallel()

	entities := fixture()
	all := NewCriteria()

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortInsertion, []string{"a", "b", "c", "d"}},
		{SortPower, []string{"a", "d", "b", "c"}},
		{SortPopularity, []string{"b", "a", "c", "d"}},
		{SortAlphabetical, []string{"a", "b", "d", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			require.Equal(t, tt.want, IDs(Visible(entities, all, tt.key)))
		})
	}
}

func TestVisibleIsStableForEqualKeys(t *testing.T) {
	t.Parallel()

	entities := []catalog.Entity{
		{ID: "1", Name: "Same", Power: 5},
		{ID: "2", Name: "Same", Power: 5},
		{ID: "3", Name: "Same", Power: 5},
	}
	for _, k := range []SortKey{SortInsertion, SortAlphabetical, SortPower, SortPopularity} {
		require.Equal(t, []string{"1", "2", "3"}, IDs(Visible(entities, NewCriteria(), k)), k.String())
	}
}

func TestVisibleDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	entities := fixture()
	got := Visible(entities, NewCriteria(), SortPower)
	got[0].Name = "changed"
	require.Equal(t, "Aria", entities[0].Name)
	require.Equal(t, "a", entities[0].ID)
}

func TestPowerThenTankScenario(t *testing.T) {
	t.Parallel()

	entities := []catalog.Entity{
		{ID: "A", Class: "Mage", Power: 950},
		{ID: "B", Class: "Fighter", Power: 810},
		{ID: "C", Class: "Tank", Power: 620},
	}
	require.Equal(t, []string{"A", "B", "C"}, IDs(Visible(entities, NewCriteria(), SortPower)))

	c := NewCriteria()
	c.Class = "Tank"
	require.Equal(t, []string{"C"}, IDs(Visible(entities, c, SortPower)))
}

func TestQueryMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, query string
		want        bool
	}{
		{"Talon", "", true},
		{"Talon", "tal", true},
		{"Talon", "tln", true},
		{"Talon", "talin", true},
		{"Talon", "xyz", false},
		{"Blood Moon Talon", "moan", true},
		{"Aria", "bastion", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, matchQuery(tt.name, tt.query), "%q ~ %q", tt.name, tt.query)
	}
}

func TestCycling(t *testing.T) {
	t.Parallel()

	opts := Classes(fixture())
	require.Equal(t, []string{AnyClass, "Mage", "Tank"}, opts)
	require.Equal(t, "Mage", NextClass(opts, ""))
	require.Equal(t, AnyClass, NextClass(opts, "Tank"))
	require.Equal(t, AnyClass, NextClass(opts, "Vanished"))

	r := catalog.RarityAny
	seen := []catalog.Rarity{}
	for range 5 {
		r = NextRarity(r)
		seen = append(seen, r)
	}
	require.Equal(t, []catalog.Rarity{catalog.RarityCommon, catalog.RarityRare, catalog.RarityEpic, catalog.RarityLegendary, catalog.RarityAny}, seen)

	require.Equal(t, Yes, Any.Next())
	require.Equal(t, Any, No.Next())
	require.Equal(t, SortInsertion, SortPopularity.Next())

	k, err := ParseSortKey("Power")
	require.NoError(t, err)
	require.Equal(t, SortPower, k)
	_, err = ParseSortKey("random")
	require.Error(t, err)
}
