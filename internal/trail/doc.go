// Package trail renders a fading glyph-sprite trail that follows a pointer
// across a full-viewport overlay.
//
// A [Controller] mounts a [Surface] on a [Host], turns pointer and touch
// samples into particles through a distance-based [Emitter], and redraws
// every live particle once per host frame using a [SpriteCache] of
// pre-rendered glyph bitmaps. Everything runs on the host's loop goroutine;
// the package holds no locks.
//
// Configuration is not validated. A density <= 0 spawns nothing and a
// negative fade speed produces particles that never disappear.
//
// Example:
//
//	c, err := trail.New(host, trail.WithGlyphs("⭐", "✨"))
//	if err != nil {
//	    return err
//	}
//	defer c.Destroy()
package trail
