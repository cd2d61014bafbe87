package session

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rosterpick/internal/catalog"
	"github.com/jask/rosterpick/internal/input"
	"github.com/jask/rosterpick/internal/roster"
)

func scenarioStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, warnings := catalog.New([]catalog.Entity{
		{ID: "A", Name: "Ardent", Class: "Mage", Rarity: catalog.RarityEpic, Power: 950, Unlocked: true},
		{ID: "B", Name: "Brisk", Class: "Fighter", Rarity: catalog.RarityRare, Power: 810},
		{ID: "C", Name: "Cairn", Class: "Tank", Rarity: catalog.RarityCommon, Power: 620, Unlocked: true},
	})
	require.Empty(t, warnings)
	return s
}

func TestFilterReanchorsFocus(t *testing.T) {
	t.Parallel()

	s := New(scenarioStore(t), Options{Sort: roster.SortPower})
	require.Equal(t, []string{"A", "B", "C"}, roster.IDs(s.Visible()))
	require.Equal(t, "A", s.Selection.PreviewedID())

	c := s.Criteria()
	c.Class = "Tank"
	s.SetCriteria(c)
	require.Equal(t, []string{"C"}, roster.IDs(s.Visible()))
	require.Equal(t, "C", s.Selection.PreviewedID())

	c.Class = "Healer"
	s.SetCriteria(c)
	require.Empty(t, s.Visible())
	require.Empty(t, s.Selection.PreviewedID())
	require.False(t, s.Selection.Navigate(1), "navigate on an empty list is a no-op")
}

func TestDefaultFocusIsFirstCatalogEntity(t *testing.T) {
	t.Parallel()

	s := New(scenarioStore(t), Options{Sort: roster.SortAlphabetical})
	require.Equal(t, "A", s.Selection.PreviewedID())

	empty, _ := catalog.New(nil)
	e := New(empty, Options{})
	require.Empty(t, e.Selection.PreviewedID())
	require.Empty(t, e.Visible())
}

func TestTransformSurvivesFocusChange(t *testing.T) {
	t.Parallel()

	s := New(scenarioStore(t), Options{})
	s.Preview.BeginDrag(0)
	s.Preview.ContinueDrag(100)
	s.Preview.EndDrag()
	s.Preview.ZoomBy(-300)
	s.Selection.NextPose()

	s.Selection.Navigate(1)
	require.InDelta(t, 30.0, s.Preview.Rotation(), 1e-9)
	require.InDelta(t, 1.3, s.Preview.Zoom(), 1e-9)
	require.Equal(t, 0, s.Selection.PoseIndex())
}

func TestCycleCommands(t *testing.T) {
	t.Parallel()

	s := New(scenarioStore(t), Options{})
	s.CycleClass()
	require.Equal(t, "Mage", s.Criteria().Class)
	require.Equal(t, []string{"A"}, roster.IDs(s.Visible()))

	s.CycleClass()
	s.CycleClass()
	s.CycleClass()
	require.Equal(t, roster.AnyClass, s.Criteria().Class)

	s.CycleUnlocked()
	require.Equal(t, []string{"A", "C"}, roster.IDs(s.Visible()))
	s.CycleRarity()
	require.Equal(t, []string{"C"}, roster.IDs(s.Visible()))
	require.Equal(t, "C", s.Selection.PreviewedID())

	s.CycleSort()
	require.Equal(t, roster.SortAlphabetical, s.SortKey())

	s.SetQuery("")
	s.SetCriteria(roster.NewCriteria())
	s.SetQuery("brisk")
	require.Equal(t, []string{"B"}, roster.IDs(s.Visible()))
}

func TestSortAndFilterChangesAreLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(scenarioStore(t), Options{Logger: log.New(&buf, "", 0)})
	buf.Reset()

	s.CycleSort()
	require.Contains(t, buf.String(), "sort "+roster.SortAlphabetical.String())

	buf.Reset()
	s.CycleClass()
	require.Contains(t, buf.String(), "class=Mage")
}

func TestDispatcherDrivesSession(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(scenarioStore(t), Options{SlotCount: 3, Logger: log.New(&buf, "", 0)})
	require.Contains(t, buf.String(), s.ID)

	hub := input.NewHub()
	td, err := input.New(s.Controllers(), input.DefaultKeymap()).Activate(hub)
	require.NoError(t, err)
	defer td()

	hub.Emit(&input.KeyEvent{Name: "c"})
	hub.Emit(&input.KeyEvent{Name: "c"})
	hub.Emit(&input.KeyEvent{Name: "c"})
	require.Equal(t, "Tank", s.Criteria().Class)
	require.Equal(t, "C", s.Selection.PreviewedID())

	tr := &input.Transfer{}
	hub.Emit(&input.DragEvent{Phase: input.DragStart, EntityID: "A", Transfer: tr})
	hub.Emit(&input.DragEvent{Phase: input.DragDrop, Slot: 2, Transfer: tr})
	team := s.Team()
	require.Len(t, team, 3)
	require.Equal(t, "A", team[2].ID)
	require.Empty(t, team[0].ID)
}
