//go:build !android

package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gg/text"

	"wandtrail/internal/event"
	"wandtrail/internal/raster"
	"wandtrail/internal/trail"
)

const DefaultTitle = "wandtrail"

type Options struct {
	Title string

	// Font renders the glyphs. Nil loads the embedded default.
	Font *text.FontSource

	// Color is the glyph fill, "#rrggbb".
	Color string

	ReducedMotion bool
}

// Host is a transparent desktop overlay. Window coordinates are logical
// pixels; the content scale is reported as the device pixel ratio.
type Host struct {
	*event.Loop

	window    *glfw.Window
	presenter *presenter
	opts      Options
	fallbacks []*text.FontSource
	canvas    *raster.Canvas
}

// withDefaults fills in the title and font. It runs before the OS thread is
// locked so a failure returns with the goroutine unlocked.
func (o Options) withDefaults() (Options, error) {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Font == nil {
		font, err := raster.LoadFont("")
		if err != nil {
			return o, err
		}
		o.Font = font
	}
	return o, nil
}

// New opens the overlay window. It locks the calling goroutine to its OS
// thread; Run and Close must be called from the same goroutine.
func New(opts Options) (*Host, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	fallbacks := raster.LoadFallbacks(nil)

	// Everything from here on needs the main OS thread.
	runtime.LockOSThread()
	window, err := initWindow(opts.Title)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	pres, err := newPresenter()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	h := &Host{
		Loop:      event.NewLoop(),
		window:    window,
		presenter: pres,
		opts:      opts,
		fallbacks: fallbacks,
	}
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.PointerMove(x, y)
	})
	window.SetSizeCallback(func(_ *glfw.Window, w, hh int) {
		h.Resize(w, hh)
	})

	trail.Logger().Debug("desktop: window open",
		slog.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.Int("fallback_fonts", len(fallbacks)))
	return h, nil
}

func (h *Host) ViewportSize() (int, int) { return h.window.GetSize() }

func (h *Host) DevicePixelRatio() float64 {
	sx, _ := h.window.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

func (h *Host) PrefersReducedMotion() bool { return h.opts.ReducedMotion }

func (h *Host) MountSurface(w, hh int) (trail.Surface, error) {
	c := raster.NewCanvas(w, hh, h.opts.Font, h.opts.Color)
	c.SetFallbacks(h.fallbacks...)
	c.OnRemove(func() {
		if h.canvas == c {
			h.canvas = nil
		}
	})
	h.canvas = c
	return c, nil
}

// Run polls input, runs frame callbacks and presents the canvas once per
// vsync until the window closes, Escape is pressed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	for !h.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		glfw.PollEvents()
		if h.window.GetKey(glfw.KeyEscape) == glfw.Press {
			h.window.SetShouldClose(true)
			continue
		}

		h.Frame()

		fbW, fbH := h.window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		if h.canvas != nil {
			w, hh := h.canvas.Size()
			h.presenter.upload(h.canvas.Pixels(), w, hh)
			h.presenter.draw(fbW, fbH)
		} else {
			h.presenter.clear(fbW, fbH)
		}
		h.window.SwapBuffers()
	}
	return nil
}

func (h *Host) Close() {
	h.presenter.destroy()
	h.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}
