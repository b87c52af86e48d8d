// Command wandtrail draws a fading glyph trail behind the pointer, either as
// a transparent desktop overlay or inside a terminal.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"wandtrail/internal/config"
	"wandtrail/internal/desktop"
	"wandtrail/internal/raster"
	"wandtrail/internal/terminal"
	"wandtrail/internal/trail"
)

// host is a trail.Host that owns its event loop.
type host interface {
	trail.Host
	Run(ctx context.Context) error
	Close()
}

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trail.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	c, err := trail.New(h, cfg.TrailOptions()...)
	if err != nil {
		return err
	}
	defer c.Destroy()

	return h.Run(ctx)
}

func newHost(cfg config.Config) (host, error) {
	if cfg.Backend == config.BackendTerminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		return terminal.New(screen, terminal.Options{
			Color:         cfg.Color,
			ReducedMotion: cfg.ReducedMotion,
		})
	}

	font, err := raster.LoadFont(cfg.Font)
	if err != nil {
		return nil, err
	}
	return desktop.New(desktop.Options{
		Font:          font,
		Color:         cfg.Color,
		ReducedMotion: cfg.ReducedMotion,
	})
}
