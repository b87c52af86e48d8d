package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"wandtrail/internal/event"
	"wandtrail/internal/trail"
)

const (
	// A cell covers CellWidth×CellHeight logical pixels.
	CellWidth  = 8
	CellHeight = 16

	FrameInterval = 16 * time.Millisecond // ~60 FPS

	DefaultColor = "#ffffff"
)

type Options struct {
	// Color is the glyph colour at full opacity, as "#rrggbb".
	Color string

	ReducedMotion bool
}

// Host runs a trail inside a terminal. Mouse motion reports the centre of
// the cell under the pointer.
type Host struct {
	*event.Loop

	screen  tcell.Screen
	opts    Options
	fg      [3]int32
	surface *Surface
}

// New initialises screen and enables mouse motion reporting.
func New(screen tcell.Screen, opts Options) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return &Host{
		Loop:   event.NewLoop(),
		screen: screen,
		opts:   opts,
		fg:     parseColor(opts.Color),
	}, nil
}

func parseColor(hex string) [3]int32 {
	if hex == "" {
		hex = DefaultColor
	}
	r, g, b := tcell.GetColor(hex).RGB()
	if r < 0 || g < 0 || b < 0 {
		trail.Logger().Warn("terminal: unknown color, using default", slog.String("color", hex))
		r, g, b = tcell.GetColor(DefaultColor).RGB()
	}
	return [3]int32{r, g, b}
}

func (h *Host) ViewportSize() (int, int) {
	cols, rows := h.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

func (h *Host) DevicePixelRatio() float64 { return 1 }

func (h *Host) PrefersReducedMotion() bool { return h.opts.ReducedMotion }

func (h *Host) MountSurface(w, hh int) (trail.Surface, error) {
	s := newSurface(w, hh, h.fg)
	s.onRemove = func() {
		h.surface = nil
		h.screen.Clear()
		h.screen.Show()
	}
	h.surface = s
	return s, nil
}

// handle applies one terminal event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.PointerMove((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.screen.Sync()
		h.Resize(cols*CellWidth, rows*CellHeight)
	}
	return true
}

// tick runs pending frame callbacks and shows the result.
func (h *Host) tick() {
	if h.Frame() == 0 || h.surface == nil {
		return
	}
	h.surface.flush(h.screen)
	h.screen.Show()
}

// Run drives the host until Escape, Ctrl-C or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.tick()
		}
	}
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}
