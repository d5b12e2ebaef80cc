package app

import (
	"io"
	"log/slog"

	"github.com/vk/travisgen/internal/hclconfig"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *hclconfig.Loader
}

// NewApp constructs the application with its own isolated logger. Generated
// pipeline text destined for standard output goes to outW; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: hclconfig.NewLoader(),
	}
}
