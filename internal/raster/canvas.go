package raster

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"wandtrail/internal/trail"
)

// DefaultColor is the glyph fill used when none is configured.
const DefaultColor = "#000000"

// Sprite is a pre-rendered glyph bitmap.
type Sprite struct {
	buf *gg.ImageBuf
}

func (s *Sprite) Bounds() (int, int) { return s.buf.Bounds() }

// Canvas is a software RGBA overlay in logical pixels. It implements
// trail.Surface; hosts read Pixels after each frame and present them.
type Canvas struct {
	ctx       *gg.Context
	font      *text.FontSource
	fallbacks []*text.FontSource
	color     string
	warned    map[string]bool

	removed  bool
	onRemove func()
}

// NewCanvas allocates a w×h transparent canvas. Glyphs are filled with
// color, a hex string such as "#ffcc00".
func NewCanvas(w, h int, font *text.FontSource, color string) *Canvas {
	if color == "" {
		color = DefaultColor
	}
	return &Canvas{
		ctx:   gg.NewContext(max(w, 1), max(h, 1)),
		font:   font,
		color:  color,
		warned: make(map[string]bool),
	}
}

// SetFallbacks sets fonts tried in order when the primary font has no
// glyph for a rune.
func (c *Canvas) SetFallbacks(fonts ...*text.FontSource) { c.fallbacks = fonts }

// OnRemove sets a func to run the first time Remove is called.
func (c *Canvas) OnRemove(fn func()) { c.onRemove = fn }

func (c *Canvas) Size() (int, int) { return c.ctx.Width(), c.ctx.Height() }

// Resize reallocates the pixel buffer. Non-positive sizes are ignored, as
// when a window is minimised.
func (c *Canvas) Resize(w, h int) {
	if err := c.ctx.Resize(w, h); err != nil {
		trail.Logger().Debug("raster: resize ignored", slog.Any("err", err))
	}
}

func (c *Canvas) Clear() { c.ctx.Clear() }

func (c *Canvas) DrawSprite(s trail.Sprite, x, y, w, h, alpha float64) {
	sp, ok := s.(*Sprite)
	if !ok || alpha <= 0 {
		return
	}
	c.ctx.DrawImageEx(sp.buf, gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
		Opacity:   min(alpha, 1),
	})
}

// RenderGlyph draws glyph centred on a transparent edge×edge bitmap, in the
// first font that covers it. A glyph no font covers is drawn as a sparkle
// instead of the missing-glyph box.
func (c *Canvas) RenderGlyph(glyph string, edge int, fontSize float64) trail.Sprite {
	edge = max(edge, 1)
	dc := gg.NewContext(edge, edge)
	defer dc.Close()

	if fontSize > 0 && (c.font != nil || len(c.fallbacks) > 0) {
		dc.SetHexColor(c.color)
		half := float64(edge) / 2
		if face := c.faceFor(glyph, fontSize); face != nil {
			dc.SetFont(face)
			dc.DrawStringAnchored(glyph, half, half, 0.5, 0.5)
		} else {
			c.warnMissing(glyph)
			drawSparkle(dc, half, half, fontSize/2)
		}
	}
	return &Sprite{buf: gg.ImageBufFromImage(dc.Image())}
}

func (c *Canvas) faceFor(glyph string, size float64) text.Face {
	if c.font != nil {
		if face := c.font.Face(size); covers(face, glyph) {
			return face
		}
	}
	for _, src := range c.fallbacks {
		if face := src.Face(size); covers(face, glyph) {
			return face
		}
	}
	return nil
}

func (c *Canvas) warnMissing(glyph string) {
	if c.warned[glyph] {
		return
	}
	c.warned[glyph] = true
	trail.Logger().Warn("raster: no font covers glyph, drawing a sparkle",
		slog.String("glyph", glyph), slog.Int("fallbacks", len(c.fallbacks)))
}

// drawSparkle fills a four-pointed star of radius r centred on (x, y).
func drawSparkle(dc *gg.Context, x, y, r float64) {
	dc.MoveTo(x, y-r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.QuadraticTo(x, y, x, y+r)
	dc.QuadraticTo(x, y, x-r, y)
	dc.QuadraticTo(x, y, x, y-r)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		trail.Logger().Debug("raster: sparkle fill", slog.Any("err", err))
	}
}

func (c *Canvas) Remove() {
	if c.removed {
		return
	}
	c.removed = true
	if c.onRemove != nil {
		c.onRemove()
	}
}

func (c *Canvas) Removed() bool { return c.removed }

// Pixels returns the live RGBA buffer, row-major with a stride of 4×width.
// Colour is premultiplied by alpha. It is overwritten by the next frame.
func (c *Canvas) Pixels() []byte { return c.ctx.ResizeTarget().Data() }

// Image returns a copy of the current frame.
func (c *Canvas) Image() *image.RGBA { return c.ctx.ResizeTarget().ToImage() }
