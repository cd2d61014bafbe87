package input

import "slices"

type Handler func(Event)

type listener struct {
	id int
	fn Handler
}

// Hub is the host side of listener registration. Emit runs every listener for the event's
// kind synchronously, in registration order, on the caller's goroutine. The zero value is
// ready to use.
type Hub struct {
	nextID    int
	listeners map[Kind][]listener
}

func NewHub() *Hub {
	return &Hub{listeners: map[Kind][]listener{}}
}

// Listen registers fn for kind and returns a function that removes it. The remover is
// safe to call more than once.
func (h *Hub) Listen(kind Kind, fn Handler) func() {
	if fn == nil {
		return func() {}
	}
	if h.listeners == nil {
		h.listeners = map[Kind][]listener{}
	}
	h.nextID++
	id := h.nextID
	h.listeners[kind] = append(h.listeners[kind], listener{id: id, fn: fn})
	return func() {
		h.listeners[kind] = slices.DeleteFunc(h.listeners[kind], func(l listener) bool {
			return l.id == id
		})
	}
}

func (h *Hub) Emit(ev Event) {
	if ev == nil {
		return
	}
	// Listeners may unregister while the event is being delivered.
	for _, l := range slices.Clone(h.listeners[ev.Kind()]) {
		l.fn(ev)
	}
}

// Count reports the listeners registered for kind.
func (h *Hub) Count(kind Kind) int {
	return len(h.listeners[kind])
}
