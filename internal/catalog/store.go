package catalog

import (
	"fmt"
	"strings"
)

// Store holds the catalog for one session. It is immutable after New.
type Store struct {
	entities []Entity
	index    map[string]int
}

// New builds a store in the given order. Entities with an empty id are skipped and
// duplicate ids keep their first occurrence; each skipped record is reported in warnings.
func New(entities []Entity) (*Store, []string) {
	s := &Store{
		entities: make([]Entity, 0, len(entities)),
		index:    make(map[string]int, len(entities)),
	}
	var warnings []string
	for i, e := range entities {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("entry %d: empty id", i))
			continue
		}
		if _, dup := s.index[id]; dup {
			warnings = append(warnings, fmt.Sprintf("entry %d: duplicate id %q", i, id))
			continue
		}
		e.ID = id
		s.index[id] = len(s.entities)
		s.entities = append(s.entities, e.clone())
	}
	return s, warnings
}

// Get looks up an entity by id.
func (s *Store) Get(id string) (Entity, bool) {
	if s == nil {
		return Entity{}, false
	}
	idx, ok := s.index[id]
	if !ok {
		return Entity{}, false
	}
	return s.entities[idx].clone(), true
}

// Has reports whether id is in the catalog without copying the record.
func (s *Store) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Index returns the insertion position of id, or -1.
func (s *Store) Index(id string) int {
	if s == nil {
		return -1
	}
	idx, ok := s.index[id]
	if !ok {
		return -1
	}
	return idx
}

// All returns every entity in insertion order.
func (s *Store) All() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, len(s.entities))
	for i, e := range s.entities {
		out[i] = e.clone()
	}
	return out
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entities)
}
