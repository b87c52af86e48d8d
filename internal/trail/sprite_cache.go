package trail

// spriteKey rounds the size so continuous random sizes share a bounded set
// of entries.
type spriteKey struct {
	glyph string
	size  int
}

// SpriteCache memoizes rendered glyph bitmaps per (glyph, rounded size).
// Entries are never evicted; the cache lives as long as its controller.
type SpriteCache struct {
	surface Surface
	dpr     float64
	entries map[spriteKey]Sprite
}

func NewSpriteCache(surface Surface, dpr float64) *SpriteCache {
	if dpr <= 0 {
		dpr = 1
	}
	return &SpriteCache{
		surface: surface,
		dpr:     dpr,
		entries: make(map[spriteKey]Sprite),
	}
}

// DevicePixelRatio is the ratio sprites are rendered at.
func (c *SpriteCache) DevicePixelRatio() float64 { return c.dpr }

// Get returns the sprite for glyph at size, rendering it on first use.
// The first request for a rounded size decides the exact font size used.
func (c *SpriteCache) Get(glyph string, size float64) Sprite {
	key := spriteKey{glyph: glyph, size: roundHalfAway(size)}
	if s, ok := c.entries[key]; ok {
		return s
	}

	edge := int(size * c.dpr * SpriteMargin)
	if edge < 1 {
		edge = 1
	}
	s := c.surface.RenderGlyph(glyph, edge, size*c.dpr)
	c.entries[key] = s
	return s
}

func (c *SpriteCache) Len() int { return len(c.entries) }

// Reset drops every entry.
func (c *SpriteCache) Reset() {
	clear(c.entries)
}
