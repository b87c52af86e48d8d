package trail

// Cancel revokes one registration. Calling it more than once is a no-op.
type Cancel func()

// FrameID identifies a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Point is a position in logical (CSS-like) pixels.
type Point struct {
	X, Y float64
}

// Sprite is an off-screen bitmap produced by a Surface.
type Sprite interface {
	// Bounds returns the bitmap size in device pixels.
	Bounds() (w, h int)
}

// Surface is the full-viewport overlay the controller draws on.
type Surface interface {
	Resize(w, h int)
	Clear()
	// DrawSprite paints s scaled to w×h with its top-left corner at (x, y)
	// and the given alpha in [0, 1].
	DrawSprite(s Sprite, x, y, w, h, alpha float64)
	// RenderGlyph renders glyph centered on a fresh edge×edge bitmap using a
	// font of fontSize device pixels.
	RenderGlyph(glyph string, edge int, fontSize float64) Sprite
	// Remove detaches the surface from the host. Idempotent.
	Remove()
}

// Host is the environment a Controller runs in. All callbacks are invoked on
// the host's loop goroutine, one at a time.
type Host interface {
	ViewportSize() (w, h int)
	DevicePixelRatio() float64
	// PrefersReducedMotion is read once, at construction.
	PrefersReducedMotion() bool

	MountSurface(w, h int) (Surface, error)

	OnResize(fn func(w, h int)) Cancel
	OnPointerMove(fn func(p Point)) Cancel
	OnTouchMove(fn func(touches []Point)) Cancel

	// RequestFrame runs fn once before the next repaint.
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
