package roster

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jask/rosterpick/internal/catalog"
)

// Visible filters entities by c and orders them by k. It never aliases the input and
// equal keys keep their catalog order.
func Visible(entities []catalog.Entity, c Criteria, k SortKey) []catalog.Entity {
	out := make([]catalog.Entity, 0, len(entities))
	for _, e := range entities {
		if Match(e, c) {
			out = append(out, e)
		}
	}

	switch k {
	case SortAlphabetical:
		// A collator keeps scratch buffers, so each call gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b catalog.Entity) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortPower:
		slices.SortStableFunc(out, func(a, b catalog.Entity) int {
			return cmp.Compare(b.Power, a.Power)
		})
	case SortPopularity:
		slices.SortStableFunc(out, func(a, b catalog.Entity) int {
			return cmp.Compare(b.Popularity, a.Popularity)
		})
	}
	return out
}

// IDs projects a visible list onto entity ids.
func IDs(entities []catalog.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

// Classes lists the distinct classes in catalog order, prefixed by AnyClass.
func Classes(entities []catalog.Entity) []string {
	out := []string{AnyClass}
	seen := map[string]bool{}
	for _, e := range entities {
		if e.Class == "" || seen[e.Class] {
			continue
		}
		seen[e.Class] = true
		out = append(out, e.Class)
	}
	return out
}

// NextClass returns the class after current in options, wrapping to the first.
func NextClass(options []string, current string) string {
	if len(options) == 0 {
		return AnyClass
	}
	if current == "" {
		current = AnyClass
	}
	idx := slices.Index(options, current)
	return options[(idx+1)%len(options)]
}

// NextRarity cycles All -> Common -> ... -> Legendary -> All.
func NextRarity(r catalog.Rarity) catalog.Rarity {
	if r >= catalog.RarityLegendary {
		return catalog.RarityAny
	}
	return r + 1
}
