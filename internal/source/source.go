// Package source supplies the raw text of the inputs to evaluate: a single
// file, every matching file under a directory, or standard input.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/treeweight/internal/ctxlog"
	"github.com/vk/treeweight/internal/fsutil"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// DefaultExtensions are the file extensions read from a directory.
var DefaultExtensions = []string{".txt", ".tree", ".csv"}

var (
	// ErrMissingSource is returned when no input was provided at all.
	ErrMissingSource = errors.New("treeweight: no input provided")

	// ErrFailedToLoad is returned when an input exists but cannot be read.
	ErrFailedToLoad = errors.New("treeweight: failed to load file")
)

// Input is the full text of one input.
type Input struct {
	Name string
	Text string
}

// Reader resolves a path to inputs.
type Reader struct {
	// Stdin is read for the "-" path, or when no path is given. A nil Stdin
	// means standard input is not available (e.g. it is a terminal).
	Stdin io.Reader
	// Extensions filter files when the path is a directory.
	Extensions []string
}

// NewReader returns a Reader with the default extensions.
func NewReader(stdin io.Reader) *Reader {
	return &Reader{Stdin: stdin, Extensions: DefaultExtensions}
}

// Read returns every input named by path in a stable order.
func (r *Reader) Read(ctx context.Context, path string) ([]Input, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" || path == StdinName {
		if r.Stdin == nil {
			return nil, ErrMissingSource
		}
		logger.Debug("Reading input from stdin.")
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrFailedToLoad, err)
		}
		return []Input{{Name: StdinName, Text: string(data)}}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	if !info.IsDir() {
		in, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Read input file.", "path", path, "bytes", len(in.Text))
		return []Input{in}, nil
	}

	exts := r.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	files, err := fsutil.FindFilesByExtension(path, exts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files matching %v under %s", ErrMissingSource, exts, path)
	}
	logger.Debug("Discovered input files.", "path", path, "count", len(files))

	inputs := make([]Input, 0, len(files))
	for _, file := range files {
		in, err := ReadFile(file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// ReadFile reads a single file into an Input.
func ReadFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return Input{Name: path, Text: string(data)}, nil
}
