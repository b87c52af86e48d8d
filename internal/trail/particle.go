package trail

// Particle is one glyph sprite in flight.
// Size and glyph are fixed at creation and only readable through accessors.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Opacity float64

	size  float64
	glyph string
}

// NewParticle spawns a particle at (x, y). The pointer motion (vx0, vy0)
// contributes MotionShare of the initial velocity; cfg.Speed scales the
// random jitter on top of it.
func NewParticle(x, y, vx0, vy0 float64, cfg Config, r *Rand) Particle {
	return Particle{
		X:       x,
		Y:       y,
		VX:      vx0*MotionShare + r.Jitter(cfg.Speed),
		VY:      vy0*MotionShare + r.Jitter(cfg.Speed),
		Opacity: 1,
		size:    r.RangeF(MinSize, MinSize+SizeRange),
		glyph:   pickGlyph(cfg.Glyphs, r),
	}
}

func pickGlyph(glyphs []string, r *Rand) string {
	switch len(glyphs) {
	case 0:
		return DefaultGlyph
	case 1:
		return glyphs[0]
	}
	return glyphs[r.Intn(len(glyphs))]
}

func (p *Particle) Size() float64 { return p.size }

func (p *Particle) Glyph() string { return p.glyph }

// Alive reports whether the particle still has visible opacity.
func (p *Particle) Alive() bool { return p.Opacity > 0 }

// Update advances the particle by one frame.
func (p *Particle) Update(fadeSpeed float64) {
	p.VX *= Damping
	p.VY *= Damping
	p.VY += Gravity

	p.X += p.VX
	p.Y += p.VY
	p.Opacity -= fadeSpeed
}
