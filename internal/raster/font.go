package raster

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"wandtrail/internal/trail"
)

// fallbackPaths are system outline fonts known to carry the dingbat and
// symbol glyphs missing from Go Regular. Bitmap-only emoji fonts are left
// out: they map the runes but have no outlines to fill.
var fallbackPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	"/usr/share/fonts/gdouros-symbola/Symbola.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansSymbols2-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansSymbols2-Regular.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\seguisym.ttf`,
	`C:\Windows\Fonts\seguiemj.ttf`,
}

// LoadFont parses the font at path, or the embedded Go Regular face when
// path is empty.
func LoadFont(path string) (*text.FontSource, error) {
	if path == "" {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		return src, nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return src, nil
}

// LoadFallbacks parses whichever of paths exist, skipping files that are
// missing or fail to parse. Nil paths searches the usual system locations.
func LoadFallbacks(paths []string) []*text.FontSource {
	if paths == nil {
		paths = fallbackPaths
	}
	var fonts []*text.FontSource
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		src, err := text.NewFontSourceFromFile(p)
		if err != nil {
			trail.Logger().Debug("raster: fallback font skipped",
				slog.String("path", p), slog.Any("err", err))
			continue
		}
		fonts = append(fonts, src)
	}
	return fonts
}

// covers reports whether face has a glyph for every visible rune of s.
// Variation selectors and joiners are ignored.
func covers(face text.Face, s string) bool {
	n := 0
	for _, r := range s {
		if r == 0x200d || (r >= 0xfe00 && r <= 0xfe0f) {
			continue
		}
		if !face.HasGlyph(r) {
			return false
		}
		n++
	}
	return n > 0
}
