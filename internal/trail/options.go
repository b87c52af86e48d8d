package trail

import "time"

// Option configures a Controller during creation.
//
// Example:
//
//	c, err := trail.New(host,
//	    trail.WithGlyphs("⭐", "✨"),
//	    trail.WithDensity(2),
//	)
type Option func(*Config)

// Config is the immutable per-controller configuration.
// Values are used as given; see the package docs for degenerate inputs.
type Config struct {
	// Glyphs is the set each particle draws its glyph from, uniformly.
	Glyphs []string

	// Density is the number of particles per spawn batch and the inverse of
	// the travel distance between batches.
	Density float64

	// FadeSpeed is subtracted from a particle's opacity every frame.
	FadeSpeed float64

	// Speed scales the symmetric random velocity jitter at spawn.
	Speed float64

	// RespectMotionPrefs keeps the controller idle when the host reports a
	// reduced-motion preference.
	RespectMotionPrefs bool

	// Seed feeds the controller's RNG. Zero derives one from the clock.
	Seed uint64
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Glyphs:             []string{DefaultGlyph},
		Density:            DefaultDensity,
		FadeSpeed:          DefaultFadeSpeed,
		Speed:              DefaultSpeed,
		RespectMotionPrefs: true,
	}
}

// WithGlyphs sets the glyph set. An empty call keeps the default glyph.
func WithGlyphs(glyphs ...string) Option {
	return func(c *Config) {
		if len(glyphs) == 0 {
			return
		}
		c.Glyphs = append([]string(nil), glyphs...)
	}
}

func WithDensity(d float64) Option {
	return func(c *Config) { c.Density = d }
}

func WithFadeSpeed(f float64) Option {
	return func(c *Config) { c.FadeSpeed = f }
}

func WithSpeed(s float64) Option {
	return func(c *Config) { c.Speed = s }
}

func WithRespectMotionPrefs(v bool) Option {
	return func(c *Config) { c.RespectMotionPrefs = v }
}

// WithSeed makes particle randomness reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg
}

// perBatch is the number of particles one spawn batch creates: one per unit
// step of a counter running from zero while below Density.
func (c Config) perBatch() int {
	if c.Density <= 0 {
		return 0
	}
	n := int(c.Density)
	if float64(n) < c.Density {
		n++
	}
	return n
}
