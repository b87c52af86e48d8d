package terminal

import "testing"

type otherSprite struct{}

func (otherSprite) Bounds() (int, int) { return 1, 1 }

func TestSurfaceMostOpaqueWins(t *testing.T) {
	s := newSurface(10*CellWidth, 4*CellHeight, [3]int32{255, 255, 255})
	a := s.RenderGlyph("A", 12, 8)
	b := s.RenderGlyph("B", 12, 8)

	// Both centred on (20, 24): cell (2, 1).
	s.DrawSprite(a, 14, 18, 12, 12, 0.3)
	s.DrawSprite(b, 14, 18, 12, 12, 0.8)
	s.DrawSprite(a, 14, 18, 12, 12, 0.5)

	if r, alpha := s.Cell(2, 1); r != 'B' || alpha != 0.8 {
		t.Errorf("cell = %q @ %v, want 'B' @ 0.8", r, alpha)
	}
}

func TestSurfaceIgnores(t *testing.T) {
	s := newSurface(4*CellWidth, 2*CellHeight, [3]int32{})
	a := s.RenderGlyph("A", 8, 8)
	s.DrawSprite(a, -100, 0, 8, 8, 1)
	s.DrawSprite(a, 0, 1000, 8, 8, 1)
	s.DrawSprite(a, 0, 0, 8, 8, 0)
	s.DrawSprite(otherSprite{}, 0, 0, 8, 8, 1)

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if r, _ := s.Cell(col, row); r != 0 {
				t.Errorf("cell (%d, %d) = %q, want empty", col, row, r)
			}
		}
	}
}

func TestSurfaceClearAndClamp(t *testing.T) {
	s := newSurface(2*CellWidth, CellHeight, [3]int32{})
	s.DrawSprite(s.RenderGlyph("✨", 8, 8), 0, 0, 8, 8, 3)
	if r, alpha := s.Cell(0, 0); r != '✨' || alpha != 1 {
		t.Errorf("cell = %q @ %v, want '✨' @ 1", r, alpha)
	}
	s.Clear()
	if r, _ := s.Cell(0, 0); r != 0 {
		t.Errorf("cell after Clear = %q", r)
	}
}

func TestSurfaceRenderEmptyGlyph(t *testing.T) {
	s := newSurface(CellWidth, CellHeight, [3]int32{})
	g := s.RenderGlyph("", 5, 5).(*glyphSprite)
	if g.r != '*' {
		t.Errorf("rune = %q, want '*'", g.r)
	}
	if w, h := g.Bounds(); w != 5 || h != 5 {
		t.Errorf("bounds = %dx%d", w, h)
	}
}
