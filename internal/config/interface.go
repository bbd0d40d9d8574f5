package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and translates it into a Model,
	// starting from Default(). An empty path returns Default().
	Load(ctx context.Context, path string) (*Model, error)
}
