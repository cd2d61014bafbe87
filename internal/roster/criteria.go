package roster

import (
	"fmt"
	"strings"

	"github.com/jask/rosterpick/internal/catalog"
)

// AnyClass is the class filter value that matches every class. An empty string does too.
const AnyClass = "All"

// Tristate filters a boolean field.
type Tristate int

const (
	Any Tristate = iota
	Yes
	No
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "Unlocked"
	case No:
		return "Locked"
	default:
		return "All"
	}
}

// Next cycles Any -> Yes -> No -> Any.
func (t Tristate) Next() Tristate {
	return (t + 1) % 3
}

func (t Tristate) match(v bool) bool {
	switch t {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

// Criteria is a conjunction of independent predicates. The zero value matches everything
// except that Rarity must be set to catalog.RarityAny; use NewCriteria.
type Criteria struct {
	Class    string
	Rarity   catalog.Rarity
	Unlocked Tristate
	Query    string
}

func NewCriteria() Criteria {
	return Criteria{Class: AnyClass, Rarity: catalog.RarityAny, Unlocked: Any}
}

func (c Criteria) anyClass() bool {
	return c.Class == "" || c.Class == AnyClass
}

// Match reports whether e satisfies every predicate of c.
func Match(e catalog.Entity, c Criteria) bool {
	if !c.anyClass() && e.Class != c.Class {
		return false
	}
	if c.Rarity != catalog.RarityAny && e.Rarity != c.Rarity {
		return false
	}
	if !c.Unlocked.match(e.Unlocked) {
		return false
	}
	return matchQuery(e.Name, c.Query)
}

// SortKey orders the visible list.
type SortKey int

const (
	SortInsertion SortKey = iota
	SortAlphabetical
	SortPower
	SortPopularity
)

var sortKeyNames = [...]string{"insertion", "alphabetical", "power", "popularity"}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

func (k SortKey) Next() SortKey {
	return (k + 1) % SortKey(len(sortKeyNames))
}

func ParseSortKey(s string) (SortKey, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "default", "order":
		return SortInsertion, nil
	case "name", "alpha":
		return SortAlphabetical, nil
	}
	for i, name := range sortKeyNames {
		if name == v {
			return SortKey(i), nil
		}
	}
	return SortInsertion, fmt.Errorf("unknown sort key %q", s)
}
