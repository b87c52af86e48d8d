package event

import "wandtrail/internal/trail"

// Loop is the event and frame plumbing shared by hosts. Embedding it
// provides the listener and frame methods of trail.Host; the host feeds it
// input with Resize, PointerMove and TouchMove and calls Frame once per
// repaint.
type Loop struct {
	bus    *Bus
	frames FrameQueue
}

func NewLoop() *Loop {
	return &Loop{bus: NewBus()}
}

func (l *Loop) Bus() *Bus { return l.bus }

func (l *Loop) OnResize(fn func(w, h int)) trail.Cancel {
	return l.bus.Subscribe(Resize, func(e Event) { fn(e.Width, e.Height) })
}

func (l *Loop) OnPointerMove(fn func(p trail.Point)) trail.Cancel {
	return l.bus.Subscribe(PointerMove, func(e Event) { fn(trail.Point{X: e.X, Y: e.Y}) })
}

func (l *Loop) OnTouchMove(fn func(touches []trail.Point)) trail.Cancel {
	return l.bus.Subscribe(TouchMove, func(e Event) { fn(e.Touches) })
}

func (l *Loop) RequestFrame(fn func()) trail.FrameID { return l.frames.Request(fn) }

func (l *Loop) CancelFrame(id trail.FrameID) { l.frames.Cancel(id) }

func (l *Loop) Resize(w, h int) {
	l.bus.Emit(Event{Type: Resize, Width: w, Height: h})
}

func (l *Loop) PointerMove(x, y float64) {
	l.bus.Emit(Event{Type: PointerMove, X: x, Y: y})
}

func (l *Loop) TouchMove(touches []trail.Point) {
	l.bus.Emit(Event{Type: TouchMove, Touches: touches})
}

// Frame runs the frame callbacks pending at the start of the call.
func (l *Loop) Frame() int { return l.frames.RunPending() }

// PendingFrames reports whether any frame callback is waiting.
func (l *Loop) PendingFrames() bool { return l.frames.Len() > 0 }
