package terminal

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"wandtrail/internal/trail"
)

// glyphSprite stands in for a bitmap: a terminal cell can only show a rune.
type glyphSprite struct {
	r    rune
	edge int
}

func (s *glyphSprite) Bounds() (int, int) { return s.edge, s.edge }

type cell struct {
	r     rune
	alpha float64
}

// Surface is a cell grid. Each DrawSprite lands in the cell under the sprite
// centre; the most opaque sprite in a cell wins.
type Surface struct {
	cols, rows int
	cells      []cell
	fg         [3]int32

	removed  bool
	onRemove func()
}

func newSurface(w, h int, fg [3]int32) *Surface {
	s := &Surface{fg: fg}
	s.Resize(w, h)
	return s
}

// Resize takes logical pixels.
func (s *Surface) Resize(w, h int) {
	s.cols = max(w/CellWidth, 0)
	s.rows = max(h/CellHeight, 0)
	s.cells = make([]cell, s.cols*s.rows)
}

func (s *Surface) Clear() { clear(s.cells) }

func (s *Surface) DrawSprite(sp trail.Sprite, x, y, w, h, alpha float64) {
	g, ok := sp.(*glyphSprite)
	if !ok || alpha <= 0 {
		return
	}
	col := int(math.Floor((x + w/2) / CellWidth))
	row := int(math.Floor((y + h/2) / CellHeight))
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	c := &s.cells[row*s.cols+col]
	if alpha >= c.alpha {
		c.r = g.r
		c.alpha = min(alpha, 1)
	}
}

func (s *Surface) RenderGlyph(glyph string, edge int, _ float64) trail.Sprite {
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		r = '*'
	}
	return &glyphSprite{r: r, edge: edge}
}

func (s *Surface) Remove() {
	if s.removed {
		return
	}
	s.removed = true
	if s.onRemove != nil {
		s.onRemove()
	}
}

// Cell returns the rune and opacity drawn at (col, row) this frame.
func (s *Surface) Cell(col, row int) (rune, float64) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return 0, 0
	}
	c := s.cells[row*s.cols+col]
	return c.r, c.alpha
}

func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

// flush copies the grid to screen, fading each glyph toward black by its
// opacity.
func (s *Surface) flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if c.r == 0 {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			color := tcell.NewRGBColor(
				int32(float64(s.fg[0])*c.alpha),
				int32(float64(s.fg[1])*c.alpha),
				int32(float64(s.fg[2])*c.alpha),
			)
			screen.SetContent(col, row, c.r, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}
