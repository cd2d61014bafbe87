package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rosterpick/internal/input"
)

const wheelDelta = 120

// mouseState tracks a press until its release so a terminal press/motion/release
// sequence can be reported as a click, a card drag or a preview rotation.
type mouseState struct {
	hoverID string

	rotating bool

	pressID     string // card body under the press
	pickID      string // select affordance under the press
	dragging    bool   // card drag started (button moved after the press)
	transfer    *input.Transfer
	overSlot    int
	dropAllowed bool
}

func newMouseState() mouseState { return mouseState{overSlot: -1} }

func (a *App) handleMouse(m tea.MouseMsg) {
	g := a.geometry()
	h := g.at(m.X, m.Y)

	// Buttonless motion or a fresh press mid-gesture means the release never reached
	// us, e.g. the button came up outside the terminal.
	if a.mouse.active() && lostRelease(m) {
		a.abandonPress()
	}

	// Plain motion is hover. Drags report motion with the button held.
	if m.Action == tea.MouseActionMotion && m.Button == tea.MouseButtonNone && !a.mouse.active() {
		a.hover(h)
		return
	}

	if a.mouse.active() {
		switch m.Action {
		case tea.MouseActionMotion:
			a.drag(m, h)
		case tea.MouseActionRelease:
			a.release(m, h)
		}
		return
	}

	switch m.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.Action != tea.MouseActionPress {
			return
		}
		a.wheel(m, h)
	case tea.MouseButtonLeft:
		if m.Action != tea.MouseActionPress {
			return
		}
		a.press(m, h)
	}
}

func lostRelease(m tea.MouseMsg) bool {
	switch m.Action {
	case tea.MouseActionMotion:
		return m.Button == tea.MouseButtonNone
	case tea.MouseActionPress:
		return !tea.MouseEvent(m).IsWheel()
	}
	return false
}

func (s mouseState) active() bool {
	return s.rotating || s.pressID != "" || s.pickID != ""
}

func (a *App) hover(h hit) {
	if h.entityID == a.mouse.hoverID {
		return
	}
	a.mouse.hoverID = h.entityID
	if h.entityID != "" {
		a.hub.Emit(&input.HoverEvent{EntityID: h.entityID})
	}
}

func (a *App) wheel(m tea.MouseMsg, h hit) {
	delta := wheelDelta
	if m.Button == tea.MouseButtonWheelUp {
		delta = -wheelDelta
	}
	ev := &input.WheelEvent{Delta: float64(delta), Surface: h.surface}
	a.hub.Emit(ev)
	if ev.DefaultPrevented() {
		return
	}
	// Unclaimed wheel scrolls the carousel.
	if h.surface == input.SurfaceCard {
		if delta < 0 {
			a.scrollBy(-1)
		} else {
			a.scrollBy(1)
		}
	}
}

func (a *App) press(m tea.MouseMsg, h hit) {
	switch {
	case h.surface == input.SurfacePreview:
		a.hub.Emit(&input.PointerEvent{Phase: input.PointerDown, X: m.X, Y: m.Y, Surface: h.surface})
		a.mouse.rotating = a.sess.Preview.Dragging()
	case h.onSelect:
		a.mouse.pickID = h.entityID
	case h.entityID != "":
		a.mouse.pressID = h.entityID
		a.mouse.transfer = &input.Transfer{}
	}
}

func (a *App) drag(m tea.MouseMsg, h hit) {
	if a.mouse.rotating {
		a.hub.Emit(&input.PointerEvent{Phase: input.PointerMove, X: m.X, Y: m.Y, Surface: h.surface})
		return
	}
	if a.mouse.pressID == "" {
		return
	}
	if !a.mouse.dragging {
		// Jitter inside the pressed card is still a click.
		if h.entityID == a.mouse.pressID {
			return
		}
		a.mouse.dragging = true
		a.hub.Emit(&input.DragEvent{Phase: input.DragStart, EntityID: a.mouse.pressID, Transfer: a.mouse.transfer})
	}
	over := &input.DragEvent{Phase: input.DragOver, Slot: h.slot, Transfer: a.mouse.transfer}
	if h.surface == input.SurfaceSlot {
		a.hub.Emit(over)
	}
	a.mouse.overSlot = h.slot
	a.mouse.dropAllowed = over.DefaultPrevented()
}

func (a *App) release(m tea.MouseMsg, h hit) {
	defer a.resetPress()

	if a.mouse.rotating {
		a.hub.Emit(&input.PointerEvent{Phase: input.PointerUp, X: m.X, Y: m.Y, Surface: h.surface})
		return
	}
	if a.mouse.pickID != "" {
		if h.onSelect && h.entityID == a.mouse.pickID {
			a.hub.Emit(&input.ClickEvent{EntityID: h.entityID, Target: input.ClickSelect})
		}
		return
	}
	if !a.mouse.dragging {
		if h.entityID == a.mouse.pressID {
			a.hub.Emit(&input.ClickEvent{EntityID: h.entityID, Target: input.ClickBody})
			a.ScrollIntoView(h.entityID)
		}
		return
	}
	// Drop only fires on a target that accepted the last drag-over.
	if a.mouse.dropAllowed && h.surface == input.SurfaceSlot && h.slot == a.mouse.overSlot {
		a.hub.Emit(&input.DragEvent{Phase: input.DragDrop, Slot: h.slot, Transfer: a.mouse.transfer})
	}
	a.hub.Emit(&input.DragEvent{Phase: input.DragEnd, Transfer: a.mouse.transfer})
}

// cancelPointer aborts whatever the mouse was doing, e.g. when the terminal loses focus.
func (a *App) cancelPointer() {
	a.abandonPress()
	a.mouse.hoverID = ""
}

// abandonPress ends the current gesture without a click or a drop.
func (a *App) abandonPress() {
	if a.mouse.rotating {
		a.hub.Emit(&input.PointerEvent{Phase: input.PointerCancel})
	}
	if a.mouse.dragging {
		a.hub.Emit(&input.DragEvent{Phase: input.DragEnd, Transfer: a.mouse.transfer})
	}
	a.resetPress()
}

func (a *App) resetPress() {
	hover := a.mouse.hoverID
	a.mouse = newMouseState()
	a.mouse.hoverID = hover
}
