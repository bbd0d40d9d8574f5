package app

import (
	"io"
	"log/slog"

	"github.com/vk/treeweight/internal/engine"
	"github.com/vk/treeweight/internal/sink"
	"github.com/vk/treeweight/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	reader *source.Reader
	engine *engine.Engine
	sink   *sink.Writer
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. stdin may be nil when standard input is not
// available.
func NewApp(outW, logW io.Writer, cfg *Config, stdin io.Reader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		config: cfg,
		reader: &source.Reader{Stdin: stdin, Extensions: cfg.Extensions},
		engine: engine.New(cfg.Policy, cfg.Order),
		sink:   sink.New(cfg.Output, outW),
	}
}
