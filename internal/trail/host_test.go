package trail

import "errors"

type fakeSprite struct {
	glyph    string
	edge     int
	fontSize float64
}

func (s *fakeSprite) Bounds() (int, int) { return s.edge, s.edge }

type drawCall struct {
	sprite     Sprite
	x, y, w, h float64
	alpha      float64
}

type fakeSurface struct {
	w, h     int
	clears   int
	rendered int
	removed  int
	draws    []drawCall
	onDraw   func()
}

func (s *fakeSurface) Resize(w, h int) { s.w, s.h = w, h }

func (s *fakeSurface) Clear() {
	s.clears++
	s.draws = s.draws[:0]
}

func (s *fakeSurface) DrawSprite(sp Sprite, x, y, w, h, alpha float64) {
	s.draws = append(s.draws, drawCall{sprite: sp, x: x, y: y, w: w, h: h, alpha: alpha})
	if s.onDraw != nil {
		s.onDraw()
	}
}

func (s *fakeSurface) RenderGlyph(glyph string, edge int, fontSize float64) Sprite {
	s.rendered++
	return &fakeSprite{glyph: glyph, edge: edge, fontSize: fontSize}
}

func (s *fakeSurface) Remove() { s.removed++ }

// fakeHost is an in-memory Host driven by the test.
type fakeHost struct {
	w, h    int
	dpr     float64
	reduced bool
	failErr error

	surface *fakeSurface
	mounts  int

	nextID  int
	resize  map[int]func(w, h int)
	pointer map[int]func(p Point)
	touch   map[int]func(touches []Point)

	nextFrame FrameID
	frames    map[FrameID]func()
	canceled  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		w:       800,
		h:       600,
		dpr:     1,
		resize:  make(map[int]func(w, h int)),
		pointer: make(map[int]func(p Point)),
		touch:   make(map[int]func(touches []Point)),
		frames:  make(map[FrameID]func()),
	}
}

var errNoSurface = errors.New("no drawing surface")

func (h *fakeHost) ViewportSize() (int, int)   { return h.w, h.h }
func (h *fakeHost) DevicePixelRatio() float64  { return h.dpr }
func (h *fakeHost) PrefersReducedMotion() bool { return h.reduced }

func (h *fakeHost) listeners() int {
	return len(h.resize) + len(h.pointer) + len(h.touch)
}

func (h *fakeHost) pointerTo(x, y float64) {
	for _, fn := range h.pointer {
		fn(Point{X: x, Y: y})
	}
}

func (h *fakeHost) touchAt(touches ...Point) {
	for _, fn := range h.touch {
		fn(touches)
	}
}

func (h *fakeHost) resizeTo(w, hh int) {
	h.w, h.h = w, hh
	for _, fn := range h.resize {
		fn(w, hh)
	}
}

func (h *fakeHost) MountSurface(w, hh int) (Surface, error) {
	if h.failErr != nil {
		return nil, h.failErr
	}
	h.mounts++
	h.surface = &fakeSurface{w: w, h: hh}
	return h.surface, nil
}

func (h *fakeHost) OnResize(fn func(w, h int)) Cancel {
	h.nextID++
	id := h.nextID
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

func (h *fakeHost) OnPointerMove(fn func(p Point)) Cancel {
	h.nextID++
	id := h.nextID
	h.pointer[id] = fn
	return func() { delete(h.pointer, id) }
}

func (h *fakeHost) OnTouchMove(fn func(touches []Point)) Cancel {
	h.nextID++
	id := h.nextID
	h.touch[id] = fn
	return func() { delete(h.touch, id) }
}

func (h *fakeHost) RequestFrame(fn func()) FrameID {
	h.nextFrame++
	h.frames[h.nextFrame] = fn
	return h.nextFrame
}

func (h *fakeHost) CancelFrame(id FrameID) {
	if _, ok := h.frames[id]; ok {
		delete(h.frames, id)
		h.canceled++
	}
}

// step runs the callbacks pending at the start of the tick.
func (h *fakeHost) step() {
	pending := h.frames
	h.frames = make(map[FrameID]func())
	for _, fn := range pending {
		fn()
	}
}
