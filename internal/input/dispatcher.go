package input

import (
	"errors"
	"sync"

	"github.com/jask/rosterpick/internal/audio"
	"github.com/jask/rosterpick/internal/preview"
	"github.com/jask/rosterpick/internal/selection"
	"github.com/jask/rosterpick/internal/slots"
)

// ErrActive is returned when Activate is called on a dispatcher that has not been torn down.
var ErrActive = errors.New("input: dispatcher already active")

// keyZoomDelta is the wheel delta one zoom key press stands for.
const keyZoomDelta = 120

// Commands are the session-level actions bound to filter keys.
type Commands interface {
	CycleClass()
	CycleRarity()
	CycleUnlocked()
	CycleSort()
}

// Controllers is the dispatcher's handle on the state it drives. Commands and Player are
// optional.
type Controllers struct {
	Selection *selection.Controller
	Preview   *preview.Engine
	Slots     *slots.Manager
	Commands  Commands
	Player    audio.Player
}

// Teardown removes every listener registered by one activation. Calls after the first do
// nothing.
type Teardown func()

type Dispatcher struct {
	c      Controllers
	keys   Keymap
	active bool
}

func New(c Controllers, keys Keymap) *Dispatcher {
	return &Dispatcher{c: c, keys: keys}
}

func (d *Dispatcher) Keymap() Keymap { return d.keys }

func (d *Dispatcher) Active() bool { return d.active }

// Activate registers the dispatcher's listeners on h. Pointer moves and releases are
// listened for on the whole hub, so a drag always ends even when the release happens
// off the preview surface.
func (d *Dispatcher) Activate(h *Hub) (Teardown, error) {
	if d.active {
		return nil, ErrActive
	}
	removers := []func(){
		h.Listen(KindKey, d.onKey),
		h.Listen(KindPointer, d.onPointer),
		h.Listen(KindWheel, d.onWheel),
		h.Listen(KindDrag, d.onDrag),
		h.Listen(KindHover, d.onHover),
		h.Listen(KindClick, d.onClick),
	}
	d.active = true

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, remove := range removers {
				remove()
			}
			d.active = false
		})
	}, nil
}

func (d *Dispatcher) onKey(ev Event) {
	k, ok := ev.(*KeyEvent)
	if !ok {
		return
	}
	action, ok := d.keys.Lookup(k.Name)
	if !ok {
		return
	}
	sel := d.c.Selection
	switch action {
	case ActionNext:
		sel.Navigate(+1)
	case ActionPrev:
		sel.Navigate(-1)
	case ActionConfirm:
		// Read focus now; a value captured at Activate would go stale.
		sel.Confirm(sel.PreviewedID())
	case ActionClear:
		sel.Clear()
	case ActionToggle:
		sel.Toggle(sel.PreviewedID())
	case ActionPoseNext:
		sel.NextPose()
	case ActionPosePrev:
		sel.PrevPose()
	case ActionZoomIn:
		d.c.Preview.ZoomBy(-keyZoomDelta)
	case ActionZoomOut:
		d.c.Preview.ZoomBy(keyZoomDelta)
	case ActionResetView:
		d.c.Preview.Reset()
	case ActionAssign:
		slot, ok := slotFromKey(k.Name)
		if !ok {
			return
		}
		d.c.Slots.Assign(slot, sel.PreviewedID())
	case ActionCycleClass, ActionCycleRarity, ActionCycleUnlocked, ActionCycleSort:
		if d.c.Commands == nil {
			return
		}
		d.runCommand(action)
	default:
		// search, save, help and quit belong to the host
		return
	}
	k.MarkHandled()
}

func (d *Dispatcher) runCommand(a Action) {
	switch a {
	case ActionCycleClass:
		d.c.Commands.CycleClass()
	case ActionCycleRarity:
		d.c.Commands.CycleRarity()
	case ActionCycleUnlocked:
		d.c.Commands.CycleUnlocked()
	case ActionCycleSort:
		d.c.Commands.CycleSort()
	}
}

func slotFromKey(name string) (int, bool) {
	if len(name) != 1 || name[0] < '1' || name[0] > '9' {
		return 0, false
	}
	return int(name[0] - '1'), true
}

func (d *Dispatcher) onPointer(ev Event) {
	p, ok := ev.(*PointerEvent)
	if !ok {
		return
	}
	eng := d.c.Preview
	switch p.Phase {
	case PointerDown:
		if p.Surface != SurfacePreview {
			return
		}
		eng.BeginDrag(float64(p.X))
	case PointerMove:
		if !eng.Dragging() {
			return
		}
		eng.ContinueDrag(float64(p.X))
	case PointerUp, PointerCancel:
		if !eng.Dragging() {
			return
		}
		eng.EndDrag()
	default:
		return
	}
	p.MarkHandled()
}

func (d *Dispatcher) onWheel(ev Event) {
	w, ok := ev.(*WheelEvent)
	if !ok || w.Surface != SurfacePreview {
		return
	}
	if d.c.Preview.ZoomBy(w.Delta) {
		w.PreventDefault()
		w.MarkHandled()
	}
}

func (d *Dispatcher) onDrag(ev Event) {
	g, ok := ev.(*DragEvent)
	if !ok || g.Transfer == nil {
		return
	}
	switch g.Phase {
	case DragStart:
		if g.EntityID == "" {
			return
		}
		g.Transfer.SetData(g.EntityID)
	case DragOver:
		// Without this the host refuses the drop.
		if g.Slot < 0 || g.Slot >= d.c.Slots.Len() {
			return
		}
		g.PreventDefault()
	case DragDrop:
		payload, ok := g.Transfer.Data()
		if !ok {
			return
		}
		g.PreventDefault()
		d.c.Slots.Assign(g.Slot, payload)
	case DragEnd:
		g.Transfer.Clear()
	default:
		return
	}
	g.MarkHandled()
}

func (d *Dispatcher) onHover(ev Event) {
	h, ok := ev.(*HoverEvent)
	if !ok {
		return
	}
	if h.EntityID != "" && h.EntityID == d.c.Selection.PreviewedID() {
		h.MarkHandled()
		return
	}
	if !d.c.Selection.FocusID(h.EntityID) {
		return
	}
	audio.Trigger(d.c.Player, audio.HoverTone)
	h.MarkHandled()
}

func (d *Dispatcher) onClick(ev Event) {
	c, ok := ev.(*ClickEvent)
	if !ok || c.EntityID == "" {
		return
	}
	switch c.Target {
	case ClickSelect:
		if !d.c.Selection.Known(c.EntityID) {
			return
		}
		d.c.Selection.Confirm(c.EntityID)
	default:
		if !d.c.Selection.FocusID(c.EntityID) {
			return
		}
	}
	c.MarkHandled()
}
