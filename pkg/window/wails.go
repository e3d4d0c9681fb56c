package window

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// runtimeAPI is the part of the wails runtime used by the host, swappable in tests
type runtimeAPI struct {
	screens func(ctx context.Context) ([]runtime.Screen, error)
	setSize func(ctx context.Context, width, height int)
	center  func(ctx context.Context)
}

var wailsRuntime = runtimeAPI{
	screens: runtime.ScreenGetAll,
	setSize: runtime.WindowSetSize,
	center:  runtime.WindowCenter,
}

// WailsHost exposes the single wails window through Host
type WailsHost struct {
	ctx context.Context
	rt  runtimeAPI
}

// NewWailsHost wraps the context passed to the OnStartup hook
func NewWailsHost(ctx context.Context) *WailsHost {
	return &WailsHost{ctx: ctx, rt: wailsRuntime}
}

// Window returns the main window. Wails runs a single window so any other label fails.
func (h *WailsHost) Window(label string) (Window, error) {
	if h.ctx == nil {
		return nil, errors.New("wails runtime context not available")
	}
	if label != MainLabel {
		return nil, errors.Errorf("no window with label %q", label)
	}
	return &wailsWindow{ctx: h.ctx, rt: h.rt}, nil
}

type wailsWindow struct {
	ctx context.Context
	rt  runtimeAPI
}

func (w *wailsWindow) PrimaryMonitor() (*Monitor, error) {
	screens, err := w.rt.screens(w.ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range screens {
		if s.IsPrimary {
			m := monitorFromScreen(s)
			return &m, nil
		}
	}
	return nil, nil
}

func monitorFromScreen(s runtime.Screen) Monitor {
	logical := Size{Width: float64(s.Size.Width), Height: float64(s.Size.Height)}
	if logical.Width == 0 || logical.Height == 0 {
		logical = Size{Width: float64(s.Width), Height: float64(s.Height)}
	}
	physical := Size{Width: float64(s.PhysicalSize.Width), Height: float64(s.PhysicalSize.Height)}
	if physical.Width == 0 || physical.Height == 0 {
		physical = logical
	}
	scale := 1.0
	if logical.Width > 0 {
		scale = physical.Width / logical.Width
	}
	return Monitor{PhysicalSize: physical, ScaleFactor: scale}
}

func (w *wailsWindow) SetSize(width, height float64) error {
	wi, hi := int(math.Round(width)), int(math.Round(height))
	if wi <= 0 || hi <= 0 {
		return errors.Errorf("invalid window size %dx%d", wi, hi)
	}
	w.rt.setSize(w.ctx, wi, hi)
	return nil
}

func (w *wailsWindow) Center() error {
	w.rt.center(w.ctx)
	return nil
}
