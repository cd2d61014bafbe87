// Package input translates host events into calls on the selection, preview and slot
// controllers.
package input

type Kind int

const (
	KindKey Kind = iota
	KindPointer
	KindWheel
	KindDrag
	KindHover
	KindClick
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindPointer:
		return "pointer"
	case KindWheel:
		return "wheel"
	case KindDrag:
		return "drag"
	case KindHover:
		return "hover"
	case KindClick:
		return "click"
	}
	return "unknown"
}

// Event is anything the host can emit on a Hub.
type Event interface {
	Kind() Kind
	PreventDefault()
	DefaultPrevented() bool
	MarkHandled()
	Handled() bool
}

// Flags carries the per-event outcome back to the host. PreventDefault tells the host to
// skip its own behavior (scrolling, refusing a drop); MarkHandled tells it a binding
// consumed the event.
type Flags struct {
	prevented bool
	handled   bool
}

func (f *Flags) PreventDefault()        { f.prevented = true }
func (f *Flags) DefaultPrevented() bool { return f.prevented }
func (f *Flags) MarkHandled()           { f.handled = true }
func (f *Flags) Handled() bool          { return f.handled }

// Surface identifies the region under the pointer.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfacePreview
	SurfaceCard
	SurfaceSlot
)

type KeyEvent struct {
	Flags
	// Name uses bubbletea's key naming ("left", "enter", "ctrl+s", "a").
	Name string
}

func (*KeyEvent) Kind() Kind { return KindKey }

func (e *KeyEvent) String() string { return e.Name }

type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	// PointerCancel reports lost capture: focus left the terminal mid-gesture.
	PointerCancel
)

type PointerEvent struct {
	Flags
	Phase   PointerPhase
	X, Y    int
	Surface Surface
}

func (*PointerEvent) Kind() Kind { return KindPointer }

type WheelEvent struct {
	Flags
	// Delta follows the DOM convention: positive scrolls down, which zooms out.
	Delta   float64
	Surface Surface
}

func (*WheelEvent) Kind() Kind { return KindWheel }

type DragPhase int

const (
	DragStart DragPhase = iota
	DragOver
	DragDrop
	DragEnd
)

// Transfer is the payload of one drag gesture. The host creates one per gesture and
// passes the same value with every DragEvent of that gesture.
type Transfer struct {
	data string
	set  bool
}

func (t *Transfer) SetData(s string) {
	t.data = s
	t.set = true
}

func (t *Transfer) Data() (string, bool) {
	if t == nil {
		return "", false
	}
	return t.data, t.set
}

func (t *Transfer) Clear() {
	t.data = ""
	t.set = false
}

type DragEvent struct {
	Flags
	Phase DragPhase
	// EntityID is the card the gesture started on (DragStart only).
	EntityID string
	// Slot is the slot under the pointer (DragOver and DragDrop only).
	Slot     int
	Transfer *Transfer
}

func (*DragEvent) Kind() Kind { return KindDrag }

type HoverEvent struct {
	Flags
	EntityID string
}

func (*HoverEvent) Kind() Kind { return KindHover }

type ClickTarget int

const (
	ClickBody ClickTarget = iota
	ClickSelect
)

type ClickEvent struct {
	Flags
	EntityID string
	Target   ClickTarget
}

func (*ClickEvent) Kind() Kind { return KindClick }
