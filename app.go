package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/runtime"
	simos "simcontrol/pkg/os"
	"simcontrol/pkg/window"
)

// App owns the startup and shutdown hooks of the shell
type App struct {
	log   logger.Logger
	sizer *window.Sizer
	os    *simos.SimControlOS

	// attach receives the runtime context before anything else runs
	attach  func(ctx context.Context)
	newHost func(ctx context.Context) window.Host
	show    func(ctx context.Context)
}

// NewApp wires the startup sequence
func NewApp(log logger.Logger, sizer *window.Sizer, o *simos.SimControlOS, attach func(ctx context.Context)) *App {
	return &App{
		log:     log,
		sizer:   sizer,
		os:      o,
		attach:  attach,
		newHost: newWailsHost,
		show:    runtime.WindowShow,
	}
}

func newWailsHost(ctx context.Context) window.Host {
	return window.NewWailsHost(ctx)
}

// startup sizes the hidden main window and then shows it. Any sizing failure other than a
// missing monitor aborts the process.
func (a *App) startup(ctx context.Context) {
	if a.attach != nil {
		a.attach(ctx)
	}
	a.os.Startup(ctx)

	if _, err := a.sizer.Apply(a.newHost(ctx)); err != nil {
		a.log.Fatal("startup failed: " + err.Error())
		return
	}
	a.show(ctx)
}

func (a *App) shutdown(_ context.Context) {
	a.log.Info("shutting down")
}
