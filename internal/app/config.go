package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/treeweight/internal/builder"
	"github.com/vk/treeweight/internal/config"
	"github.com/vk/treeweight/internal/sink"
	"github.com/vk/treeweight/internal/source"
	"github.com/vk/treeweight/internal/tree"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // file, directory, or "-" for stdin
	Extensions []string

	Output sink.Format
	Order  tree.Order
	Policy builder.Policy

	LogFormat string
	LogLevel  string

	Watch    bool
	Debounce time.Duration
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Watch && (cfg.InputPath == "" || cfg.InputPath == source.StdinName) {
		return nil, errors.New("watch mode requires a file or directory path")
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = source.DefaultExtensions
	}

	return &cfg, nil
}

// FromModel converts the string-typed settings model into a validated Config.
func FromModel(m *config.Model) (*Config, error) {
	format, err := sink.ParseFormat(m.Output.Format)
	if err != nil {
		return nil, err
	}

	order, err := tree.ParseOrder(m.Output.Order)
	if err != nil {
		return nil, err
	}

	linking, err := builder.ParseLinking(m.Policy.Linking)
	if err != nil {
		return nil, err
	}

	policy := builder.Policy{
		Linking:             linking,
		RejectDuplicates:    m.Policy.RejectDuplicates,
		RejectMultipleRoots: m.Policy.RejectMultipleRoots,
		RequireRoot:         m.Policy.RequireRoot,
		RejectSelfParent:    m.Policy.RejectSelfParent,
		CoerceMalformed:     m.Policy.CoerceMalformed,
	}

	return NewConfig(Config{
		InputPath:  m.Input.Path,
		Extensions: m.Input.Extensions,
		Output:     format,
		Order:      order,
		Policy:     policy,
		LogFormat:  m.Logging.Format,
		LogLevel:   m.Logging.Level,
		Watch:      m.Watch.Enabled,
		Debounce:   m.Watch.Debounce,
	})
}
