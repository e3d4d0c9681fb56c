package window

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	monitor    *Monitor
	monitorErr error
	setErr     error
	centerErr  error

	size     Size
	x, y     float64
	queries  int
	setCalls int
	centered bool
}

func (f *fakeWindow) PrimaryMonitor() (*Monitor, error) {
	f.queries++
	return f.monitor, f.monitorErr
}

func (f *fakeWindow) SetSize(width, height float64) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.size = Size{Width: width, Height: height}
	return nil
}

func (f *fakeWindow) Center() error {
	if f.centerErr != nil {
		return f.centerErr
	}
	logical := ToLogical(f.monitor.PhysicalSize, f.monitor.ScaleFactor)
	f.x = (logical.Width - f.size.Width) / 2
	f.y = (logical.Height - f.size.Height) / 2
	f.centered = true
	return nil
}

type fakeHost struct {
	window *fakeWindow
	err    error
	asked  []string
}

func (h *fakeHost) Window(label string) (Window, error) {
	h.asked = append(h.asked, label)
	if h.err != nil {
		return nil, h.err
	}
	return h.window, nil
}

func newTestSizer() (*Sizer, *bytes.Buffer) {
	var diag bytes.Buffer
	s := NewSizer(DefaultConfig(), nil)
	s.diag = &diag
	return s, &diag
}

func TestToLogical(t *testing.T) {
	cases := []struct {
		physical Size
		scale    float64
		want     Size
	}{
		{Size{1920, 1080}, 1.0, Size{1920, 1080}},
		{Size{3840, 2160}, 2.0, Size{1920, 1080}},
		{Size{2880, 1800}, 1.5, Size{1920, 1200}},
		{Size{1366, 768}, 1.25, Size{1092.8, 614.4}},
	}
	for _, c := range cases {
		got := ToLogical(c.physical, c.scale)
		assert.InDelta(t, c.want.Width, got.Width, 1e-9)
		assert.InDelta(t, c.want.Height, got.Height, 1e-9)
	}
}

func TestTargetScalesBothDimensions(t *testing.T) {
	for _, l := range []Size{{1920, 1080}, {1092.8, 614.4}, {0, 0}, {800, 1280}} {
		got := Target(l, 0.85)
		assert.InDelta(t, l.Width*0.85, got.Width, 1e-9)
		assert.InDelta(t, l.Height*0.85, got.Height, 1e-9)
	}
}

func TestApplyScenarios(t *testing.T) {
	cases := []struct {
		name     string
		monitor  Monitor
		wantLog  Size
		wantSize Size
	}{
		{"1080p", Monitor{PhysicalSize: Size{1920, 1080}, ScaleFactor: 1}, Size{1920, 1080}, Size{1632, 918}},
		{"4k hidpi", Monitor{PhysicalSize: Size{3840, 2160}, ScaleFactor: 2}, Size{1920, 1080}, Size{1632, 918}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, diag := newTestSizer()
			m := c.monitor
			w := &fakeWindow{monitor: &m}
			host := &fakeHost{window: w}

			res, err := s.Apply(host)
			require.NoError(t, err)

			assert.Equal(t, []string{"main"}, host.asked)
			assert.False(t, res.Fallback)
			assert.InDelta(t, c.wantLog.Width, res.Logical.Width, 1e-9)
			assert.InDelta(t, c.wantLog.Height, res.Logical.Height, 1e-9)
			assert.InDelta(t, c.wantSize.Width, w.size.Width, 1e-9)
			assert.InDelta(t, c.wantSize.Height, w.size.Height, 1e-9)
			assert.Equal(t, 1, w.setCalls)
			assert.Empty(t, diag.String())
		})
	}
}

func TestApplyCentersOnQueriedMonitor(t *testing.T) {
	s, _ := newTestSizer()
	w := &fakeWindow{monitor: &Monitor{PhysicalSize: Size{3840, 2160}, ScaleFactor: 2}}

	_, err := s.Apply(&fakeHost{window: w})
	require.NoError(t, err)

	require.True(t, w.centered)
	assert.InDelta(t, (1920-1632)/2.0, w.x, 1e-9)
	assert.InDelta(t, (1080-918)/2.0, w.y, 1e-9)
}

func TestApplyNoMonitorKeepsSize(t *testing.T) {
	s, diag := newTestSizer()
	w := &fakeWindow{size: Size{1280, 800}}

	res, err := s.Apply(&fakeHost{window: w})
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Equal(t, Size{1280, 800}, w.size)
	assert.Zero(t, w.setCalls)
	assert.False(t, w.centered)
	lines := strings.Split(strings.TrimRight(diag.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "no primary monitor")
}

func TestApplyWindowNotFound(t *testing.T) {
	s, diag := newTestSizer()
	w := &fakeWindow{monitor: &Monitor{PhysicalSize: Size{1920, 1080}, ScaleFactor: 1}}

	_, err := s.Apply(&fakeHost{window: w, err: errors.New("missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `main window "main" not found`)
	assert.Zero(t, w.queries)
	assert.Zero(t, w.setCalls)
	assert.Empty(t, diag.String())
}

func TestApplyFatalErrors(t *testing.T) {
	monitor := func() *Monitor { return &Monitor{PhysicalSize: Size{1920, 1080}, ScaleFactor: 1} }

	t.Run("monitor query", func(t *testing.T) {
		s, _ := newTestSizer()
		_, err := s.Apply(&fakeHost{window: &fakeWindow{monitorErr: errors.New("boom")}})
		assert.ErrorContains(t, err, "could not query primary monitor")
	})
	t.Run("set size", func(t *testing.T) {
		s, _ := newTestSizer()
		w := &fakeWindow{monitor: monitor(), setErr: errors.New("boom")}
		_, err := s.Apply(&fakeHost{window: w})
		assert.ErrorContains(t, err, "could not set window size")
		assert.False(t, w.centered)
	})
	t.Run("center", func(t *testing.T) {
		s, _ := newTestSizer()
		w := &fakeWindow{monitor: monitor(), centerErr: errors.New("boom")}
		_, err := s.Apply(&fakeHost{window: w})
		assert.ErrorContains(t, err, "could not center window")
	})
	t.Run("scale factor", func(t *testing.T) {
		s, _ := newTestSizer()
		w := &fakeWindow{monitor: &Monitor{PhysicalSize: Size{1920, 1080}}}
		_, err := s.Apply(&fakeHost{window: w})
		assert.ErrorContains(t, err, "invalid monitor scale factor")
		assert.Zero(t, w.setCalls)
	})
}

func TestApplyQueriesMonitorEachCall(t *testing.T) {
	s, _ := newTestSizer()
	w := &fakeWindow{monitor: &Monitor{PhysicalSize: Size{1920, 1080}, ScaleFactor: 1}}
	host := &fakeHost{window: w}

	_, err := s.Apply(host)
	require.NoError(t, err)
	w.monitor = &Monitor{PhysicalSize: Size{2560, 1440}, ScaleFactor: 1}
	res, err := s.Apply(host)
	require.NoError(t, err)

	assert.Equal(t, 2, w.queries)
	assert.InDelta(t, 2176, res.Applied.Width, 1e-9)
	assert.InDelta(t, 1224, res.Applied.Height, 1e-9)
}

func TestApplyCustomFraction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetFraction = 0.5
	s := NewSizer(cfg, nil)
	w := &fakeWindow{monitor: &Monitor{PhysicalSize: Size{1920, 1080}, ScaleFactor: 1}}

	res, err := s.Apply(&fakeHost{window: w})
	require.NoError(t, err)
	assert.Equal(t, Size{960, 540}, res.Applied)
}
