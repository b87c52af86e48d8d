// Package config loads wandtrail settings from the environment and command
// line flags. Flags win over environment variables.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"wandtrail/internal/trail"
)

const (
	BackendDesktop  = "desktop"
	BackendTerminal = "terminal"
)

// Config holds the wandtrail command configuration.
type Config struct {
	Backend            string   `env:"WANDTRAIL_BACKEND"              envDefault:"desktop"`
	Emoji              []string `env:"WANDTRAIL_EMOJI"                envDefault:"✨" envSeparator:","`
	Density            float64  `env:"WANDTRAIL_DENSITY"              envDefault:"1"`
	FadeSpeed          float64  `env:"WANDTRAIL_FADE_SPEED"           envDefault:"0.02"`
	Speed              float64  `env:"WANDTRAIL_SPEED"                envDefault:"5"`
	RespectMotionPrefs bool     `env:"WANDTRAIL_RESPECT_MOTION_PREFS" envDefault:"true"`
	ReducedMotion      bool     `env:"WANDTRAIL_REDUCED_MOTION"`
	Font               string   `env:"WANDTRAIL_FONT"`
	Color              string   `env:"WANDTRAIL_COLOR"`
	Seed               uint64   `env:"WANDTRAIL_SEED"`
	LogLevel           string   `env:"WANDTRAIL_LOG_LEVEL"            envDefault:"info"`
}

// ParseConfig parses the environment, then flags from args, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Emoji = cleanList(cfg.Emoji)

	// Desktops have no portable reduced-motion query; honour the GTK
	// animation switch when the explicit variable is unset.
	if _, ok := os.LookupEnv("WANDTRAIL_REDUCED_MOTION"); !ok && os.Getenv("GTK_ENABLE_ANIMATIONS") == "0" {
		cfg.ReducedMotion = true
	}

	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "output backend: desktop or terminal")
	fs.Func("emoji", "comma separated glyph set (default \"✨\")", func(s string) error {
		cfg.Emoji = cleanList(strings.Split(s, ","))
		return nil
	})
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "particles per batch; batches every 15/density units of travel")
	fs.Float64Var(&cfg.FadeSpeed, "fade-speed", cfg.FadeSpeed, "opacity lost per frame")
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "random velocity jitter at spawn")
	fs.BoolVar(&cfg.RespectMotionPrefs, "respect-motion-prefs", cfg.RespectMotionPrefs, "stay idle when reduced motion is preferred")
	fs.BoolVar(&cfg.ReducedMotion, "reduced-motion", cfg.ReducedMotion, "report a reduced-motion preference")
	fs.StringVar(&cfg.Font, "font", cfg.Font, "path to a TrueType/OpenType font (default embedded Go Regular)")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "glyph colour as #rrggbb (default black on desktop, white in a terminal)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 derives one from the clock")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendDesktop, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// TrailOptions maps the configuration onto controller options.
func (c Config) TrailOptions() []trail.Option {
	return []trail.Option{
		trail.WithGlyphs(c.Emoji...),
		trail.WithDensity(c.Density),
		trail.WithFadeSpeed(c.FadeSpeed),
		trail.WithSpeed(c.Speed),
		trail.WithRespectMotionPrefs(c.RespectMotionPrefs),
		trail.WithSeed(c.Seed),
	}
}
