package os

import (
	"context"
	stdos "os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

type nopLogger struct{}

func (nopLogger) Print(string)   {}
func (nopLogger) Trace(string)   {}
func (nopLogger) Debug(string)   {}
func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
func (nopLogger) Fatal(string)   {}

func newTestOS(path string, err error) (*SimControlOS, *runtime.SaveDialogOptions) {
	p := NewSimControlOS(nopLogger{})
	p.Startup(context.Background())
	var seen runtime.SaveDialogOptions
	p.saveDialog = func(_ context.Context, opts runtime.SaveDialogOptions) (string, error) {
		seen = opts
		return path, err
	}
	return p, &seen
}

func TestSaveFileWrites(t *testing.T) {
	target := filepath.Join(t.TempDir(), "results.zip")
	p, seen := newTestOS(target, nil)

	ok, err := p.SaveFile([]byte("PK\x03\x04"), "results.zip", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := stdos.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), data)
	assert.Equal(t, "results.zip", seen.DefaultFilename)
	require.Len(t, seen.Filters, 2)
	assert.Equal(t, "*.zip", seen.Filters[0].Pattern)
}

func TestSaveFileCustomFilters(t *testing.T) {
	p, seen := newTestOS(filepath.Join(t.TempDir(), "m.csv"), nil)
	_, err := p.SaveFile([]byte("a,b"), "m.csv", []FileFilter{{DisplayName: "CSV", Pattern: "*.csv"}})
	require.NoError(t, err)
	assert.Equal(t, []runtime.FileFilter{{DisplayName: "CSV", Pattern: "*.csv"}}, seen.Filters)
}

func TestSaveFileCancelled(t *testing.T) {
	p, _ := newTestOS("", nil)
	ok, err := p.SaveFile([]byte("x"), "x.zip", nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveFileDialogError(t *testing.T) {
	p, _ := newTestOS("", errors.New("no dialog"))
	ok, err := p.SaveFile([]byte("x"), "x.zip", nil)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSaveFileBeforeStartup(t *testing.T) {
	ok, err := NewSimControlOS(nopLogger{}).SaveFile([]byte("x"), "x.zip", nil)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestOpenInBrowser(t *testing.T) {
	p := NewSimControlOS(nopLogger{})
	var opened string
	p.openURL = func(u string) error { opened = u; return nil }
	require.NoError(t, p.OpenInBrowser("http://localhost:8000/docs"))
	assert.Equal(t, "http://localhost:8000/docs", opened)

	p.openURL = func(string) error { return errors.New("no browser") }
	assert.Error(t, p.OpenInBrowser("http://x"))
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, NewSimControlOS(nopLogger{}).GetVersion())
}
