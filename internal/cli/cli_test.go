package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/treeweight/internal/app"
	"github.com/vk/treeweight/internal/builder"
	"github.com/vk/treeweight/internal/hcl_adapter"
	"github.com/vk/treeweight/internal/sink"
	"github.com/vk/treeweight/internal/source"
	"github.com/vk/treeweight/internal/tree"
)

func defaultConfig(path string) *app.Config {
	return &app.Config{
		InputPath:  path,
		Extensions: source.DefaultExtensions,
		Output:     sink.FormatText,
		Order:      tree.PreOrder,
		Policy:     builder.DefaultPolicy(),
		LogFormat:  "text",
		LogLevel:   "warn",
		Debounce:   200 * time.Millisecond,
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	strictTwoPass := builder.Strict()
	strictTwoPass.Linking = builder.TwoPass

	coerce := builder.DefaultPolicy()
	coerce.CoerceMalformed = true

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name:           "Positional argument and defaults",
			args:           []string{"/data/tree.txt"},
			expectedConfig: defaultConfig("/data/tree.txt"),
		},
		{
			name:           "No path reads stdin",
			args:           []string{},
			expectedConfig: defaultConfig(""),
		},
		{
			name: "Happy path with all flags",
			args: []string{
				"--output=json",
				"--order", "postorder",
				"--strict",
				"--two-pass",
				"--ext", ".tree,.w",
				"--watch",
				"--debounce=1s",
				"--log-format=JSON",
				"--log-level=debug",
				"/data",
			},
			expectedConfig: &app.Config{
				InputPath:  "/data",
				Extensions: []string{".tree", ".w"},
				Output:     sink.FormatJSON,
				Order:      tree.PostOrder,
				Policy:     strictTwoPass,
				LogFormat:  "json",
				LogLevel:   "debug",
				Watch:      true,
				Debounce:   time.Second,
			},
		},
		{
			name: "Coerce flag",
			args: []string{"--coerce", "-"},
			expectedConfig: func() *app.Config {
				c := defaultConfig("-")
				c.Policy = coerce
				return c
			}(),
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "PARENT_ID -1 marks the root")
			},
		},
		{
			name:      "Unknown flag",
			args:      []string{"--bogus"},
			expectErr: true,
		},
		{
			name:      "Too many paths",
			args:      []string{"a.txt", "b.txt"},
			expectErr: true,
		},
		{
			name:      "Invalid output format",
			args:      []string{"-o", "xml", "a.txt"},
			expectErr: true,
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level", "trace", "a.txt"},
			expectErr: true,
		},
		{
			name:      "Watch needs a path",
			args:      []string{"--watch"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			cfg, shouldExit, err := Parse(tc.args, &out, hcl_adapter.NewLoader())

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, CodeUsage, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_ConfigFileMergedWithFlags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settings := `
		input {
			path = "/from/file.txt"
		}
		output {
			format = "yaml"
		}
		policy {
			require_root = true
		}
	`
	path := filepath.Join(t.TempDir(), "treeweight.hcl")
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o600))

	// --- Act ---
	cfg, shouldExit, err := Parse([]string{"-c", path, "-o", "json"}, &bytes.Buffer{}, hcl_adapter.NewLoader())

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "/from/file.txt", cfg.InputPath)
	assert.Equal(t, sink.FormatJSON, cfg.Output, "flag must override the settings file")
	assert.True(t, cfg.Policy.RequireRoot)
	assert.False(t, cfg.Policy.RejectDuplicates)
}

func TestParse_StrictSettingsWithExplicitFalse(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settings := `
		policy {
			strict       = true
			require_root = false
		}
	`
	path := filepath.Join(t.TempDir(), "treeweight.hcl")
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o600))

	testCases := []struct {
		name     string
		args     []string
		expected builder.Policy
	}{
		{
			name: "Settings file only",
			args: []string{"-c", path, "a.txt"},
			expected: builder.Policy{
				RejectDuplicates:    true,
				RejectMultipleRoots: true,
				RejectSelfParent:    true,
			},
		},
		{
			name:     "Strict flag turned off",
			args:     []string{"-c", path, "--strict=false", "a.txt"},
			expected: builder.DefaultPolicy(),
		},
		{
			name:     "Strict flag turned on",
			args:     []string{"-c", path, "--strict", "a.txt"},
			expected: builder.Strict(),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			cfg, _, err := Parse(tc.args, &bytes.Buffer{}, hcl_adapter.NewLoader())

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Policy)
		})
	}
}

func TestParse_BadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "treeweight.hcl")
	require.NoError(t, os.WriteFile(path, []byte("output {"), 0o600))

	_, _, err := Parse([]string{"-c", path, "a.txt"}, &bytes.Buffer{}, hcl_adapter.NewLoader())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestToExitError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%w: 1 of 1", app.ErrInputRejected), code: CodeRejected},
		{err: source.ErrMissingSource, code: CodeLoad},
		{err: fmt.Errorf("%w: boom", source.ErrFailedToLoad), code: CodeLoad},
		{err: &ExitError{Code: CodeUsage, Message: "usage"}, code: CodeUsage},
		{err: fmt.Errorf("evaluation interrupted: %w", context.Canceled), code: CodeInterrupted},
		{err: fmt.Errorf("anything else"), code: 1},
	}

	for _, tc := range testCases {
		tc := tc
		exitErr := ToExitError(tc.err)
		require.NotNil(t, exitErr)
		assert.Equal(t, tc.code, exitErr.Code, tc.err.Error())
	}
	assert.Nil(t, ToExitError(nil))
}
