package config

import "time"

// Model is the unified, format-agnostic representation of the settings.
type Model struct {
	Input   Input
	Output  Output
	Logging Logging
	Policy  Policy
	Watch   Watch
}

// Input selects what to read. Empty Extensions means the source package
// defaults.
type Input struct {
	Path       string
	Extensions []string
}

// Output selects how results are rendered.
type Output struct {
	Format string
	Order  string
}

// Logging configures the application logger.
type Logging struct {
	Level  string
	Format string
}

// Policy mirrors builder.Policy with string-typed enums. Strict records the
// last strict setting; the switches hold the effective values.
type Policy struct {
	Strict              bool
	Linking             string
	RejectDuplicates    bool
	RejectMultipleRoots bool
	RequireRoot         bool
	RejectSelfParent    bool
	CoerceMalformed     bool
}

// SetStrict sets Strict and every rejection switch to on. Individual switches
// applied afterwards take precedence.
func (p *Policy) SetStrict(on bool) {
	p.Strict = on
	p.RejectDuplicates = on
	p.RejectMultipleRoots = on
	p.RequireRoot = on
	p.RejectSelfParent = on
}

// Watch configures re-evaluation on file changes.
type Watch struct {
	Enabled  bool
	Debounce time.Duration
}

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Default returns the settings used when no file is given.
func Default() *Model {
	return &Model{
		Output:  Output{Format: "text", Order: "preorder"},
		Logging: Logging{Level: "warn", Format: "text"},
		Policy:  Policy{Linking: "single_pass"},
		Watch:   Watch{Debounce: DefaultDebounce},
	}
}
