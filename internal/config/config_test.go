package config

import (
	"flag"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"wandtrail/internal/trail"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("wandtrail", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("GTK_ENABLE_ANIMATIONS", "")
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Backend != BackendDesktop {
		t.Errorf("backend = %q, want desktop", cfg.Backend)
	}
	if !slices.Equal(cfg.Emoji, []string{"✨"}) {
		t.Errorf("emoji = %q", cfg.Emoji)
	}
	if cfg.Density != 1 || cfg.FadeSpeed != 0.02 || cfg.Speed != 5 {
		t.Errorf("density/fade/speed = %v/%v/%v", cfg.Density, cfg.FadeSpeed, cfg.Speed)
	}
	if !cfg.RespectMotionPrefs || cfg.ReducedMotion {
		t.Errorf("respect = %v, reduced = %v", cfg.RespectMotionPrefs, cfg.ReducedMotion)
	}
	if cfg.Font != "" || cfg.Color != "" || cfg.Seed != 0 {
		t.Errorf("font = %q, color = %q, seed = %d", cfg.Font, cfg.Color, cfg.Seed)
	}
	if l, _ := cfg.Level(); l != slog.LevelInfo {
		t.Errorf("level = %v, want info", l)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("WANDTRAIL_BACKEND", "terminal")
	t.Setenv("WANDTRAIL_EMOJI", "⭐, ✨,,🔥")
	t.Setenv("WANDTRAIL_DENSITY", "2.5")
	t.Setenv("WANDTRAIL_RESPECT_MOTION_PREFS", "false")
	t.Setenv("WANDTRAIL_SEED", "42")
	t.Setenv("WANDTRAIL_LOG_LEVEL", "debug")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if want := []string{"⭐", "✨", "🔥"}; !slices.Equal(cfg.Emoji, want) {
		t.Errorf("emoji = %q, want %q", cfg.Emoji, want)
	}
	if cfg.Density != 2.5 || cfg.RespectMotionPrefs || cfg.Seed != 42 {
		t.Errorf("density = %v, respect = %v, seed = %d", cfg.Density, cfg.RespectMotionPrefs, cfg.Seed)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("level = %v, want debug", l)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WANDTRAIL_SPEED", "9")
	t.Setenv("WANDTRAIL_EMOJI", "A")

	cfg, err := parse(t, "-speed", "1.5", "-emoji", "B,C", "-reduced-motion", "-color", "#ff00ff")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Speed != 1.5 {
		t.Errorf("speed = %v, want 1.5", cfg.Speed)
	}
	if !slices.Equal(cfg.Emoji, []string{"B", "C"}) {
		t.Errorf("emoji = %q", cfg.Emoji)
	}
	if !cfg.ReducedMotion || cfg.Color != "#ff00ff" {
		t.Errorf("reduced = %v, color = %q", cfg.ReducedMotion, cfg.Color)
	}
}

func TestParseConfigGTKAnimations(t *testing.T) {
	t.Setenv("GTK_ENABLE_ANIMATIONS", "0")
	cfg, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ReducedMotion {
		t.Error("GTK_ENABLE_ANIMATIONS=0 did not imply reduced motion")
	}

	t.Setenv("WANDTRAIL_REDUCED_MOTION", "false")
	cfg, err = parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ReducedMotion {
		t.Error("explicit WANDTRAIL_REDUCED_MOTION=false was overridden")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad env", map[string]string{"WANDTRAIL_DENSITY": "lots"}, nil, "parse env:"},
		{"bad backend", nil, []string{"-backend", "browser"}, "unknown backend"},
		{"bad level", nil, []string{"-log-level", "loud"}, "invalid log level"},
		{"bad flag", nil, []string{"-density", "x"}, "invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := flag.NewFlagSet("wandtrail", flag.ContinueOnError)
			fs.SetOutput(new(strings.Builder))
			_, err := ParseConfig(fs, tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestTrailOptions(t *testing.T) {
	cfg := Config{
		Emoji:              []string{"⭐"},
		Density:            3,
		FadeSpeed:          0.1,
		Speed:              2,
		RespectMotionPrefs: false,
		Seed:               7,
	}
	got := trail.DefaultConfig()
	for _, opt := range cfg.TrailOptions() {
		opt(&got)
	}
	if !slices.Equal(got.Glyphs, []string{"⭐"}) || got.Density != 3 || got.FadeSpeed != 0.1 ||
		got.Speed != 2 || got.RespectMotionPrefs || got.Seed != 7 {
		t.Errorf("trail config = %+v", got)
	}

	// An empty glyph list keeps the default.
	got = trail.DefaultConfig()
	for _, opt := range (Config{}).TrailOptions() {
		opt(&got)
	}
	if !slices.Equal(got.Glyphs, []string{trail.DefaultGlyph}) {
		t.Errorf("glyphs = %q", got.Glyphs)
	}
}
