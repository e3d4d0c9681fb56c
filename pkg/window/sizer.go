package window

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// MainLabel is the identifier of the application's main window
const MainLabel = "main"

// Size is a width/height pair, either in device pixels or in logical units
type Size struct {
	Width  float64
	Height float64
}

// Monitor describes a display as reported by the host
type Monitor struct {
	// PhysicalSize is the size of the display in device pixels
	PhysicalSize Size
	// ScaleFactor converts device pixels to logical units
	ScaleFactor float64
}

// Window is the subset of window operations the sizer needs
type Window interface {
	// PrimaryMonitor returns nil when no primary monitor is available
	PrimaryMonitor() (*Monitor, error)
	// SetSize takes logical units
	SetSize(width, height float64) error
	Center() error
}

// Host hands out windows by label
type Host interface {
	Window(label string) (Window, error)
}

// Config holds the sizing constants. DefaultWidth and DefaultHeight are the size the window
// is created with and the size it keeps when no monitor is found.
type Config struct {
	Label          string
	TargetFraction float64
	DefaultWidth   int
	DefaultHeight  int
}

// DefaultConfig returns the configuration the application ships with
func DefaultConfig() Config {
	return Config{
		Label:          MainLabel,
		TargetFraction: 0.85,
		DefaultWidth:   1280,
		DefaultHeight:  800,
	}
}

// Result reports what Apply did
type Result struct {
	// Fallback is true when no monitor was detected and the window kept its default size
	Fallback bool
	Monitor  Monitor
	Logical  Size
	Applied  Size
}

// Sizer sizes and centers the main window once at startup
type Sizer struct {
	config Config
	diag   io.Writer
	log    logger.Logger
}

// NewSizer creates a Sizer. The diagnostic line for a missing monitor goes to stderr,
// everything else to log, which may be nil.
func NewSizer(config Config, log logger.Logger) *Sizer {
	return &Sizer{
		config: config,
		diag:   os.Stderr,
		log:    log,
	}
}

// ToLogical converts a physical size to logical units
func ToLogical(physical Size, scale float64) Size {
	return Size{
		Width:  physical.Width / scale,
		Height: physical.Height / scale,
	}
}

// Target scales a logical size by fraction
func Target(logical Size, fraction float64) Size {
	return Size{
		Width:  logical.Width * fraction,
		Height: logical.Height * fraction,
	}
}

// Apply looks up the configured window, queries the primary monitor and resizes and centers the
// window to TargetFraction of the monitor's logical size. A missing monitor is not an error: a
// single diagnostic line is written and the window is left untouched. Every other failure is
// returned and must be treated as fatal by the caller.
func (s *Sizer) Apply(host Host) (Result, error) {
	w, err := host.Window(s.config.Label)
	if err != nil {
		return Result{}, errors.Wrapf(err, "main window %q not found", s.config.Label)
	}

	monitor, err := w.PrimaryMonitor()
	if err != nil {
		return Result{}, errors.Wrap(err, "could not query primary monitor")
	}
	if monitor == nil {
		fmt.Fprintf(s.diag, "no primary monitor detected, keeping default window size %dx%d\n",
			s.config.DefaultWidth, s.config.DefaultHeight)
		return Result{Fallback: true}, nil
	}
	if monitor.ScaleFactor <= 0 {
		return Result{}, errors.Errorf("invalid monitor scale factor %v", monitor.ScaleFactor)
	}

	logical := ToLogical(monitor.PhysicalSize, monitor.ScaleFactor)
	target := Target(logical, s.config.TargetFraction)

	if err := w.SetSize(target.Width, target.Height); err != nil {
		return Result{}, errors.Wrapf(err, "could not set window size to %.0fx%.0f", target.Width, target.Height)
	}
	if err := w.Center(); err != nil {
		return Result{}, errors.Wrap(err, "could not center window")
	}

	if s.log != nil {
		s.log.Info(fmt.Sprintf("window sized to %.0fx%.0f (monitor %.0fx%.0f @ %.2fx)",
			target.Width, target.Height, monitor.PhysicalSize.Width, monitor.PhysicalSize.Height, monitor.ScaleFactor))
	}
	return Result{
		Monitor: *monitor,
		Logical: logical,
		Applied: target,
	}, nil
}
