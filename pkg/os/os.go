package os

import (
	"context"
	"fmt"
	stdos "os"
	"runtime/debug"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// FileFilter restricts the save dialog to matching files, e.g. Pattern "*.zip"
type FileFilter struct {
	DisplayName string `json:"displayName"`
	Pattern     string `json:"pattern"`
}

// DefaultFilters are used when SaveFile is called without filters
var DefaultFilters = []FileFilter{
	{DisplayName: "ZIP archive (*.zip)", Pattern: "*.zip"},
	{DisplayName: "All files", Pattern: "*.*"},
}

type saveDialogFunc func(ctx context.Context, options runtime.SaveDialogOptions) (string, error)

// SimControlOS manages os related functionality such as saving files or opening browsers
type SimControlOS struct {
	ctx        context.Context
	log        logger.Logger
	saveDialog saveDialogFunc
	openURL    func(url string) error
}

// NewSimControlOS creates the os service. The runtime context is attached in Startup.
func NewSimControlOS(log logger.Logger) *SimControlOS {
	return &SimControlOS{
		log:        log,
		saveDialog: runtime.SaveFileDialog,
		openURL:    browser.OpenURL,
	}
}

// Startup assigns the runtime context
func (p *SimControlOS) Startup(ctx context.Context) {
	p.ctx = ctx
}

// SaveFile asks the user where to save data and writes it there. It returns false when the user
// cancels the dialog.
func (p *SimControlOS) SaveFile(data []byte, defaultFileName string, filters []FileFilter) (bool, error) {
	if p.ctx == nil {
		return false, errors.New("runtime not started")
	}
	if len(filters) == 0 {
		filters = DefaultFilters
	}
	opts := runtime.SaveDialogOptions{
		DefaultFilename: defaultFileName,
		Title:           "Save file",
	}
	for _, f := range filters {
		opts.Filters = append(opts.Filters, runtime.FileFilter{DisplayName: f.DisplayName, Pattern: f.Pattern})
	}

	path, err := p.saveDialog(p.ctx, opts)
	if err != nil {
		return false, errors.Wrap(err, "save dialog")
	}
	if path == "" {
		p.log.Info("save cancelled by user")
		return false, nil
	}
	if err := stdos.WriteFile(path, data, 0o644); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}
	p.log.Info(fmt.Sprintf("file saved to %s", path))
	return true, nil
}

// OpenInBrowser opens the operating system browser at the specified url
func (p *SimControlOS) OpenInBrowser(openUrl string) error {
	if err := p.openURL(openUrl); err != nil {
		p.log.Error(fmt.Sprintf("could not open %s: %v", openUrl, err))
		return err
	}
	return nil
}

// GetVersion returns the module version the binary was built from
func (p *SimControlOS) GetVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		p.log.Debug("could not get build info")
		return "devel"
	}
	return bi.Main.Version
}
