package trail

// Spawn spacing (in logical pixels of pointer travel per batch at density 1).
const BaseSpacing = 15.0

// Particle physics, applied once per frame.
const (
	Damping     = 0.96 // velocity multiplier (drag)
	Gravity     = 0.1  // added to VY
	MotionShare = 0.15 // fraction of the pointer motion inherited at spawn
)

// Particle size range [MinSize, MinSize+SizeRange).
const (
	MinSize   = 10.0
	SizeRange = 20.0
)

// SpriteMargin pads sprite bitmaps so ascenders and descenders are not clipped.
const SpriteMargin = 1.5

// Defaults.
const (
	DefaultGlyph     = "✨"
	DefaultDensity   = 1.0
	DefaultFadeSpeed = 0.02
	DefaultSpeed     = 5.0
)
