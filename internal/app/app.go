package app

import (
	"errors"
	"io"
	"log/slog"
)

// ErrBreakingChanges is returned by Run when at least one breaking finding was
// detected. The report itself has already been written by then; the error only
// carries the pass/fail outcome to the entrypoint.
var ErrBreakingChanges = errors.New("breaking changes detected")

// App encapsulates the checker's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The report is written
// to outW; logs go to errW so the report stays machine-scrapable.
func NewApp(outW, errW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
	}
}
