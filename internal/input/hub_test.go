package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHubDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	h := NewHub()
	var got []string
	h.Listen(KindKey, func(Event) { got = append(got, "first") })
	removeSecond := h.Listen(KindKey, func(Event) { got = append(got, "second") })
	h.Listen(KindHover, func(Event) { got = append(got, "hover") })
	h.Listen(KindKey, func(Event) { got = append(got, "third") })

	h.Emit(&KeyEvent{Name: "a"})
	require.Equal(t, []string{"first", "second", "third"}, got)

	got = nil
	removeSecond()
	removeSecond()
	h.Emit(&KeyEvent{Name: "a"})
	require.Equal(t, []string{"first", "third"}, got)
	require.Equal(t, 2, h.Count(KindKey))
}

func TestHubRemovalDuringEmit(t *testing.T) {
	t.Parallel()

	h := NewHub()
	calls := 0
	var remove func()
	remove = h.Listen(KindClick, func(Event) {
		calls++
		remove()
	})
	h.Listen(KindClick, func(Event) { calls++ })

	h.Emit(&ClickEvent{EntityID: "x"})
	h.Emit(&ClickEvent{EntityID: "x"})
	require.Equal(t, 3, calls)
	require.Equal(t, 1, h.Count(KindClick))
}

func TestHubNilHandler(t *testing.T) {
	t.Parallel()

	h := NewHub()
	remove := h.Listen(KindKey, nil)
	remove()
	require.Zero(t, h.Count(KindKey))
}

func TestKeymapOverrides(t *testing.T) {
	t.Parallel()

	km := DefaultKeymap()
	a, ok := km.Lookup("right")
	require.True(t, ok)
	require.Equal(t, ActionNext, a)

	km = km.WithOverrides(map[string][]string{
		"next":    {"N", "tab"},
		"unknown": {"z"},
		"prev":    {" "},
		"clear":   {},
	})
	_, ok = km.Lookup("right")
	require.False(t, ok)
	a, _ = km.Lookup("N")
	require.Equal(t, ActionNext, a)
	a, _ = km.Lookup("TAB")
	require.Equal(t, ActionNext, a)
	a, _ = km.Lookup(" ")
	require.Equal(t, ActionPrev, a, "overridden prev shadows toggle on space")
	a, _ = km.Lookup("esc")
	require.Equal(t, ActionClear, a)
	_, ok = km.Lookup("z")
	require.False(t, ok)

	require.Equal(t, "N", km.Binding(ActionNext).Help().Key)
	require.Len(t, km.ShortHelp(), 7)
	require.Len(t, km.FullHelp(), 4)
}

func TestZeroHubAcceptsListeners(t *testing.T) {
	t.Parallel()

	var h Hub
	require.Zero(t, h.Count(KindHover))
	h.Emit(&HoverEvent{EntityID: "x"})

	var got []string
	remove := h.Listen(KindHover, func(ev Event) { got = append(got, ev.(*HoverEvent).EntityID) })
	h.Emit(&HoverEvent{EntityID: "aria"})
	remove()
	h.Emit(&HoverEvent{EntityID: "talon"})
	require.Equal(t, []string{"aria"}, got)
}
