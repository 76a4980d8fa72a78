package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Prompts and results go
// to outW; logs go to logW so they never interleave with the report.
func NewApp(in io.Reader, outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: config,
	}
}
