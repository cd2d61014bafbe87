package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreLookupAndOrder(t *testing.T) {
	t.Parallel()

	s, warnings := New([]Entity{
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B again"},
		{ID: "  ", Name: "blank"},
	})
	require.Len(t, warnings, 2)
	require.Equal(t, 2, s.Len())

	all := s.All()
	require.Equal(t, "b", all[0].ID)
	require.Equal(t, "a", all[1].ID)

	got, ok := s.Get("b")
	require.True(t, ok)
	require.Equal(t, "B", got.Name, "first occurrence wins")
	require.Equal(t, 1, s.Index("a"))
	require.Equal(t, -1, s.Index("ghost"))

	_, ok = s.Get("ghost")
	require.False(t, ok)
}

func TestStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	s, _ := New([]Entity{{ID: "x", Poses: []string{"idle", "run"}}})
	e, _ := s.Get("x")
	e.Poses[0] = "mutated"

	again, _ := s.Get("x")
	require.Equal(t, "idle", again.Poses[0])
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	_, ok := s.Get("x")
	if ok || s.Has("x") || s.Len() != 0 || s.All() != nil || s.Index("x") != -1 {
		t.Fatalf("nil store should behave as empty")
	}
}

func TestRarityOrderingAndParse(t *testing.T) {
	t.Parallel()

	require.Less(t, RarityCommon, RarityRare)
	require.Less(t, RarityRare, RarityEpic)
	require.Less(t, RarityEpic, RarityLegendary)

	for _, r := range Rarities() {
		parsed, err := ParseRarity(strings.ToUpper(r.String()))
		require.NoError(t, err)
		require.Equal(t, r, parsed)
	}
	all, err := ParseRarity("All")
	require.NoError(t, err)
	require.Equal(t, RarityAny, all)

	_, err = ParseRarity("mythic")
	require.Error(t, err)
}

func TestDecodeTOML(t *testing.T) {
	t.Parallel()

	src := `
[[character]]
id = "talon"
name = "Talon"
class = "Assassin"
rarity = "epic"
unlocked = true
power = 810
popularity = 91
poses = ["idle", "strike"]
skins = ["Default"]

[character.stats]
health = 520
speed = 95

[[character.ability]]
key = "P"
name = "Blade's End"
type = "passive"

[[character]]
id = "bastion"
name = "Bastion"
class = "Tank"
`
	got, err := DecodeTOML(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, RarityEpic, got[0].Rarity)
	require.Equal(t, 95, got[0].Stats.Speed)
	require.Equal(t, AbilityPassive, got[0].Abilities[0].Type)
	require.Equal(t, RarityCommon, got[1].Rarity, "missing rarity defaults to common")

	_, err = DecodeTOML(strings.NewReader("[[character]]\nid = \"x\"\nrarity = \"mythic\"\n"))
	require.Error(t, err)
}

func TestDefaultsAreUnique(t *testing.T) {
	t.Parallel()

	_, warnings := New(Defaults())
	require.Empty(t, warnings)
}
