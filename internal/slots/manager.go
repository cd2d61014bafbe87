// Package slots holds the fixed team slots filled by drag-and-drop.
package slots

import (
	"slices"

	"github.com/jask/rosterpick/internal/catalog"
)

const DefaultCount = 3

// Resolver validates ids against the catalog.
type Resolver interface {
	Get(id string) (catalog.Entity, bool)
}

// Manager is a fixed-length sequence of optional entity ids. Empty string means an empty
// slot. The same entity may occupy several slots.
type Manager struct {
	catalog Resolver
	slots   []string
}

func New(r Resolver, count int) *Manager {
	if count <= 0 {
		count = DefaultCount
	}
	return &Manager{catalog: r, slots: make([]string, count)}
}

// Assign overwrites slot with id. Unknown ids and out-of-range slots are ignored.
func (m *Manager) Assign(slot int, id string) bool {
	if slot < 0 || slot >= len(m.slots) || m.catalog == nil {
		return false
	}
	e, ok := m.catalog.Get(id)
	if !ok {
		return false
	}
	m.slots[slot] = e.ID
	return true
}

// Restore replays a saved loadout through Assign. Entries past the slot count or naming
// unknown entities are dropped; the number of slots filled is returned.
func (m *Manager) Restore(ids []string) int {
	n := 0
	for i, id := range ids {
		if id == "" {
			continue
		}
		if m.Assign(i, id) {
			n++
		}
	}
	return n
}

func (m *Manager) Slots() []string {
	return slices.Clone(m.slots)
}

// Entity resolves the occupant of slot.
func (m *Manager) Entity(slot int) (catalog.Entity, bool) {
	if slot < 0 || slot >= len(m.slots) || m.slots[slot] == "" || m.catalog == nil {
		return catalog.Entity{}, false
	}
	return m.catalog.Get(m.slots[slot])
}

func (m *Manager) Len() int { return len(m.slots) }
