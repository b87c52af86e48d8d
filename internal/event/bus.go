package event

import "wandtrail/internal/trail"

type Type int

const (
	Resize Type = iota
	PointerMove
	TouchMove
)

func (t Type) String() string {
	switch t {
	case Resize:
		return "resize"
	case PointerMove:
		return "pointermove"
	case TouchMove:
		return "touchmove"
	}
	return "unknown"
}

type Event struct {
	Type Type
	X, Y float64

	// Width and Height are set for Resize.
	Width, Height int

	// Touches lists the active touch points for TouchMove.
	Touches []trail.Point
}

type Handler func(Event)

type subscription struct {
	fn       Handler
	canceled bool
}

// Bus dispatches events synchronously to subscribers in registration order.
// It is not safe for concurrent use; hosts emit from their loop goroutine.
type Bus struct {
	handlers map[Type][]*subscription
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]*subscription),
	}
}

// Subscribe registers fn for t and returns a func that removes it. A handler
// removed during an Emit is not called for the rest of that dispatch.
func (b *Bus) Subscribe(t Type, fn Handler) func() {
	s := &subscription{fn: fn}
	b.handlers[t] = append(b.handlers[t], s)
	return func() {
		if s.canceled {
			return
		}
		s.canceled = true
		old := b.handlers[t]
		kept := make([]*subscription, 0, len(old))
		for _, o := range old {
			if o != s {
				kept = append(kept, o)
			}
		}
		if len(kept) == 0 {
			delete(b.handlers, t)
			return
		}
		b.handlers[t] = kept
	}
}

func (b *Bus) Emit(e Event) {
	for _, s := range b.handlers[e.Type] {
		if !s.canceled {
			s.fn(e)
		}
	}
}

// Len returns the number of handlers subscribed to t.
func (b *Bus) Len(t Type) int {
	return len(b.handlers[t])
}
