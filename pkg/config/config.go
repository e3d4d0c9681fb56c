package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

const appName = "simcontrol"

// Settings are the process level settings read at startup
type Settings struct {
	LogLevel logger.LogLevel
	StoreDir string
}

// Load reads an optional .env file from the working directory and then the environment
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading .env")
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Settings, error) {
	s := &Settings{
		LogLevel: logger.INFO,
		StoreDir: filepath.Join(xdg.ConfigHome, appName),
	}
	if v := getenv("SIMCONTROL_LOG_LEVEL"); v != "" {
		level, err := logger.StringToLogLevel(v)
		if err != nil {
			return nil, errors.Wrapf(err, "SIMCONTROL_LOG_LEVEL")
		}
		s.LogLevel = level
	}
	if v := getenv("SIMCONTROL_STORE_DIR"); v != "" {
		s.StoreDir = v
	}
	return s, nil
}
