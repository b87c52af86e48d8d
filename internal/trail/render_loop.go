package trail

func (c *Controller) scheduleFrame() {
	c.frame = c.host.RequestFrame(c.tick)
}

// tick is one render-loop iteration: clear, update and draw every live
// particle, compact the dead ones, then ask for the next frame.
func (c *Controller) tick() {
	c.frame = 0
	if c.state != StateActive {
		return
	}
	c.renderFrame()
	// A listener or draw may have destroyed the controller mid-frame.
	if c.state != StateActive {
		return
	}
	c.scheduleFrame()
}

// renderFrame renders a single frame without rescheduling and returns the number
// of particles removed.
func (c *Controller) renderFrame() int {
	c.surface.Clear()
	dpr := c.cache.DevicePixelRatio()
	return c.particles.Step(c.cfg.FadeSpeed, func(p *Particle) {
		s := c.cache.Get(p.Glyph(), p.Size())
		bw, bh := s.Bounds()
		w := float64(bw) / dpr
		h := float64(bh) / dpr
		alpha := p.Opacity
		if alpha > 1 {
			alpha = 1
		}
		c.surface.DrawSprite(s, p.X-w/2, p.Y-h/2, w, h, alpha)
	})
}
