// Package session wires the catalog, the filter pipeline and the controllers for one run
// of the picker, recomputing the visible list explicitly whenever its inputs change.
package session

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/jask/rosterpick/internal/audio"
	"github.com/jask/rosterpick/internal/catalog"
	"github.com/jask/rosterpick/internal/input"
	"github.com/jask/rosterpick/internal/preview"
	"github.com/jask/rosterpick/internal/roster"
	"github.com/jask/rosterpick/internal/selection"
	"github.com/jask/rosterpick/internal/slots"
)

type Options struct {
	Player    audio.Player
	Preview   preview.Config
	SlotCount int
	Sort      roster.SortKey
	Logger    *log.Logger
}

type Session struct {
	ID string

	store    *catalog.Store
	criteria roster.Criteria
	sortKey  roster.SortKey
	visible  []catalog.Entity
	classes  []string
	player   audio.Player
	logger   *log.Logger

	Selection *selection.Controller
	Preview   *preview.Engine
	Slots     *slots.Manager
}

func New(store *catalog.Store, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	cfg := opts.Preview
	if cfg == (preview.Config{}) {
		cfg = preview.DefaultConfig()
	}
	s := &Session{
		ID:        uuid.NewString(),
		store:     store,
		criteria:  roster.NewCriteria(),
		sortKey:   opts.Sort,
		player:    opts.Player,
		logger:    logger,
		Selection: selection.New(store, selection.WithPlayer(opts.Player)),
		Preview:   preview.New(cfg),
		Slots:     slots.New(store, opts.SlotCount),
	}
	all := store.All()
	s.classes = roster.Classes(all)
	if len(all) > 0 {
		s.Selection.Focus(all[0])
	}
	s.recompute()
	s.logger.Printf("session %s: %d characters, %d slots", s.ID, store.Len(), s.Slots.Len())
	return s
}

// recompute rebuilds the visible list and hands it to the selection controller so focus
// never points outside it.
func (s *Session) recompute() {
	s.visible = roster.Visible(s.store.All(), s.criteria, s.sortKey)
	s.Selection.SetVisible(roster.IDs(s.visible))
}

func (s *Session) Store() *catalog.Store { return s.store }

// Visible returns the current visible list.
func (s *Session) Visible() []catalog.Entity {
	return append([]catalog.Entity(nil), s.visible...)
}

func (s *Session) Criteria() roster.Criteria { return s.criteria }

func (s *Session) SetCriteria(c roster.Criteria) {
	s.criteria = c
	s.recompute()
	s.logger.Printf("session %s: filter class=%s rarity=%s unlocked=%s query=%q -> %d visible",
		s.ID, c.Class, c.Rarity, c.Unlocked, c.Query, len(s.visible))
}

func (s *Session) SortKey() roster.SortKey { return s.sortKey }

func (s *Session) SetSort(k roster.SortKey) {
	s.sortKey = k
	s.recompute()
	s.logger.Printf("session %s: sort %s", s.ID, k)
}

func (s *Session) SetQuery(q string) {
	if q == s.criteria.Query {
		return
	}
	c := s.criteria
	c.Query = q
	s.SetCriteria(c)
}

func (s *Session) CycleClass() {
	c := s.criteria
	c.Class = roster.NextClass(s.classes, c.Class)
	s.SetCriteria(c)
}

func (s *Session) CycleRarity() {
	c := s.criteria
	c.Rarity = roster.NextRarity(c.Rarity)
	s.SetCriteria(c)
}

func (s *Session) CycleUnlocked() {
	c := s.criteria
	c.Unlocked = c.Unlocked.Next()
	s.SetCriteria(c)
}

func (s *Session) CycleSort() {
	s.SetSort(s.sortKey.Next())
}

// Controllers returns the dispatcher's handle on this session.
func (s *Session) Controllers() input.Controllers {
	return input.Controllers{
		Selection: s.Selection,
		Preview:   s.Preview,
		Slots:     s.Slots,
		Commands:  s,
		Player:    s.player,
	}
}

// Team resolves the occupied slots, keeping empty positions as zero entities.
func (s *Session) Team() []catalog.Entity {
	out := make([]catalog.Entity, s.Slots.Len())
	for i := range out {
		if e, ok := s.Slots.Entity(i); ok {
			out[i] = e
		}
	}
	return out
}
