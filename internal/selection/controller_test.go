package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/rosterpick/internal/catalog"
)

type tonePlayer struct {
	freqs []float64
	fail  bool
}

func (p *tonePlayer) PlayTone(freq float64, d time.Duration) error {
	p.freqs = append(p.freqs, freq)
	if p.fail {
		panic("audio device lost")
	}
	return nil
}

type scrollRecorder struct{ ids []string }

func (s *scrollRecorder) ScrollIntoView(id string) { s.ids = append(s.ids, id) }

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, warnings := catalog.New([]catalog.Entity{
		{ID: "a", Name: "A", Poses: []string{"idle", "run", "jump"}},
		{ID: "b", Name: "B", Poses: []string{"idle"}},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D", Poses: []string{"idle", "wave"}},
	})
	require.Empty(t, warnings)
	return s
}

func TestNavigateWrapsAndRoundTrips(t *testing.T) {
	t.Parallel()

	scroll := &scrollRecorder{}
	c := New(newStore(t), WithScroller(scroll))
	c.SetVisible([]string{"a", "b", "c"})
	require.Equal(t, "a", c.PreviewedID(), "first render anchors to the first visible entity")

	for _, start := range []string{"a", "b", "c"} {
		require.True(t, c.FocusID(start))
		require.True(t, c.Navigate(+1))
		require.True(t, c.Navigate(-1))
		require.Equal(t, start, c.PreviewedID())
	}

	c.FocusID("c")
	c.Navigate(+1)
	require.Equal(t, "a", c.PreviewedID(), "past the end wraps to index 0")
	c.Navigate(-1)
	require.Equal(t, "c", c.PreviewedID(), "before index 0 wraps to n-1")
	require.Equal(t, "c", scroll.ids[len(scroll.ids)-1])
}

func TestNavigateNoOps(t *testing.T) {
	t.Parallel()

	c := New(newStore(t))
	require.False(t, c.Navigate(1), "nothing previewed and nothing visible")

	c.SetVisible([]string{"a", "b"})
	require.True(t, c.FocusID("d"))
	require.False(t, c.Navigate(1), "previewed entity outside the visible list")
	require.Equal(t, "d", c.PreviewedID())

	require.False(t, c.Navigate(0))
	require.False(t, c.FocusID("ghost"))
	require.Equal(t, "d", c.PreviewedID())
}

func TestNavigateNormalizesDirection(t *testing.T) {
	t.Parallel()

	c := New(newStore(t))
	c.SetVisible([]string{"a", "b", "c"})
	c.Navigate(5)
	require.Equal(t, "b", c.PreviewedID())
	c.Navigate(-7)
	require.Equal(t, "a", c.PreviewedID())
}

func TestConfirmToggleClear(t *testing.T) {
	t.Parallel()

	player := &tonePlayer{}
	c := New(newStore(t), WithPlayer(player))
	c.SetVisible([]string{"a", "b"})

	c.Confirm("b")
	c.Confirm("b")
	require.Equal(t, "b", c.Confirmed())
	require.Equal(t, "a", c.PreviewedID(), "confirm does not move focus")
	require.Equal(t, []float64{880, 880}, player.freqs)

	c.Clear()
	require.Empty(t, c.Confirmed())
	require.Equal(t, "a", c.PreviewedID())

	c.Toggle("a")
	c.Toggle("a")
	require.Empty(t, c.Confirmed(), "toggle pair restores the original state")

	c.Confirm("b")
	c.Toggle("a")
	require.Equal(t, "a", c.Confirmed())

	c.Confirm("")
	c.Toggle("")
	require.Equal(t, "a", c.Confirmed())
}

func TestConfirmSurvivesAudioFailure(t *testing.T) {
	t.Parallel()

	c := New(newStore(t), WithPlayer(&tonePlayer{fail: true}))
	require.NotPanics(t, func() { c.Confirm("a") })
	require.Equal(t, "a", c.Confirmed())
}

func TestReanchorOnVisibleChange(t *testing.T) {
	t.Parallel()

	c := New(newStore(t))
	c.SetVisible([]string{"a", "b", "c"})
	c.FocusID("a")
	c.NextPose()
	require.Equal(t, 1, c.PoseIndex())

	c.SetVisible([]string{"b", "a"})
	require.Equal(t, "a", c.PreviewedID(), "still visible, focus kept")
	require.Equal(t, 1, c.PoseIndex())

	c.SetVisible([]string{"c", "d"})
	require.Equal(t, "c", c.PreviewedID())
	require.Equal(t, 0, c.PoseIndex())

	c.SetVisible(nil)
	_, ok := c.Previewed()
	require.False(t, ok)
	require.Empty(t, c.PreviewedID())

	c.SetVisible([]string{"d"})
	require.Equal(t, "d", c.PreviewedID())
}

func TestPoseCycling(t *testing.T) {
	t.Parallel()

	c := New(newStore(t))
	c.SetVisible([]string{"a", "c"})

	c.NextPose()
	c.NextPose()
	require.Equal(t, 2, c.PoseIndex())
	require.Equal(t, "jump", c.Pose())
	c.NextPose()
	require.Equal(t, 0, c.PoseIndex(), "wraps past the last pose")
	c.PrevPose()
	require.Equal(t, 2, c.PoseIndex(), "wraps before the first pose")

	c.Navigate(1)
	require.Equal(t, "c", c.PreviewedID())
	require.Equal(t, 0, c.PoseIndex(), "focus change resets the pose")
	c.NextPose()
	c.PrevPose()
	require.Equal(t, 0, c.PoseIndex(), "zero poses is a no-op")
	require.Empty(t, c.Pose())
}

func TestFocusAcceptsHiddenEntity(t *testing.T) {
	t.Parallel()

	c := New(newStore(t))
	c.SetVisible([]string{"a"})
	c.Focus(catalog.Entity{ID: "d", Poses: []string{"idle", "wave"}})
	require.Equal(t, "d", c.PreviewedID())
	require.Equal(t, []string{"a"}, c.Visible())
}
