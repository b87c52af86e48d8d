package trail

import (
	"fmt"
	"log/slog"
)

// State is the controller lifecycle position.
type State uint8

const (
	StateUninitialized State = iota
	StateActive
	StateIdle // motion suppressed by user preference
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateIdle:
		return "idle"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Controller owns one overlay trail: its surface, listeners, render loop,
// live particles and sprite cache.
type Controller struct {
	state State
	host  Host
	cfg   Config
	rng   *Rand

	surface   Surface
	cache     *SpriteCache
	particles *ParticleSet
	emitter   *Emitter

	scope Scope
	frame FrameID
}

// New mounts an overlay on host and, unless the host reports reduced motion
// and the config respects it, starts following the pointer.
func New(host Host, opts ...Option) (*Controller, error) {
	cfg := buildConfig(opts)
	c := &Controller{
		host:      host,
		cfg:       cfg,
		rng:       NewRand(cfg.Seed),
		particles: NewParticleSet(64),
		emitter:   NewEmitter(cfg.Density),
	}

	w, h := host.ViewportSize()
	surface, err := host.MountSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("mount overlay: %w", err)
	}
	c.surface = surface
	c.cache = NewSpriteCache(surface, host.DevicePixelRatio())

	if cfg.RespectMotionPrefs && host.PrefersReducedMotion() {
		Logger().Info("trail: motion disabled due to user system preferences")
		c.state = StateIdle
		return c, nil
	}

	c.activate(w, h)
	return c, nil
}

func (c *Controller) activate(w, h int) {
	c.surface.Resize(w, h)

	c.scope.Add(c.host.OnResize(c.surface.Resize))
	c.scope.Add(c.host.OnPointerMove(func(p Point) {
		c.move(p.X, p.Y)
	}))
	c.scope.Add(c.host.OnTouchMove(func(touches []Point) {
		if len(touches) == 0 {
			return
		}
		// Single pointer only: further touch points are ignored.
		c.move(touches[0].X, touches[0].Y)
	}))

	c.state = StateActive
	Logger().Debug("trail: active",
		slog.Int("width", w), slog.Int("height", h),
		slog.Float64("dpr", c.cache.DevicePixelRatio()),
		slog.Int("glyphs", len(c.cfg.Glyphs)))

	c.scheduleFrame()
}

// move feeds one pointer sample to the emitter and spawns its batches.
func (c *Controller) move(x, y float64) {
	if c.state != StateActive {
		return
	}
	batches, vx, vy := c.emitter.Sample(x, y)
	n := c.cfg.perBatch()
	for range batches {
		for range n {
			c.particles.Add(NewParticle(x, y, vx, vy, c.cfg, c.rng))
		}
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Live returns the number of live particles.
func (c *Controller) Live() int { return c.particles.Len() }

// Destroy stops the trail and releases everything it holds. It is safe to
// call in any state and more than once.
func (c *Controller) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	live, sprites := c.particles.Len(), 0
	if c.cache != nil {
		sprites = c.cache.Len()
	}

	c.scope.Close()
	if c.frame != 0 {
		c.host.CancelFrame(c.frame)
		c.frame = 0
	}
	if c.surface != nil {
		c.surface.Remove()
	}
	c.particles.Release()
	if c.cache != nil {
		c.cache.Reset()
	}
	c.state = StateDestroyed

	Logger().Debug("trail: destroyed",
		slog.Int("particles", live), slog.Int("sprites", sprites))
}
