package main

import (
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"simcontrol/frontend"
	"simcontrol/pkg/client"
	"simcontrol/pkg/config"
	"simcontrol/pkg/logger"
	simos "simcontrol/pkg/os"
	"simcontrol/pkg/store"
	"simcontrol/pkg/window"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l := logger.NewCustomLogger("simcontrol", settings.LogLevel, nil)

	s, err := store.Open(settings.StoreDir)
	if err != nil {
		log.Fatal(err)
	}

	winConf := window.DefaultConfig()
	c := client.NewClient(s, l)
	o := simos.NewSimControlOS(l)
	app := NewApp(l, window.NewSizer(winConf, l), o, l.SetContext)

	err = wails.Run(newAppOptions(settings, winConf, l, app, c, o, store.NewService(s)))
	if err != nil {
		log.Fatal(err)
	}
}

func newAppOptions(settings *config.Settings, winConf window.Config, l *logger.CustomLogger, app *App, bind ...interface{}) *options.App {
	return &options.App{
		Title:       "Simulation Control",
		Width:       winConf.DefaultWidth,
		Height:      winConf.DefaultHeight,
		StartHidden: true,
		AssetServer: &assetserver.Options{
			Assets: frontend.Assets,
		},
		BackgroundColour:   &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Logger:             l,
		LogLevel:           settings.LogLevel,
		LogLevelProduction: settings.LogLevel,
		OnStartup:          app.startup,
		OnShutdown:         app.shutdown,
		Bind:               bind,
	}
}
