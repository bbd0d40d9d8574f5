package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/treeweight/internal/cli"
)

func TestRun_ComputesTotal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "0, -1, 0, 5\n1, 0, 0, 5\n2, 1, 0, 5\n3, 2, 0, 5\n4, 3, 5"
	filePath := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(filePath, []byte(input), 0600), "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, nil, []string{filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "25\n", out.String())
}

func TestRun_InvalidInputExitsWithCodeOne(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, strings.NewReader("0, -1, five"), []string{"-"})

	require.Error(t, err)
	require.Equal(t, "Invalid Input File!\n", out.String())
	require.Equal(t, cli.CodeRejected, cli.ToExitError(err).Code)
}

func TestRun_MissingSourceExitsWithLoadCode(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, nil, []string{})

	require.Error(t, err)
	require.Equal(t, "Failed to load file\n", out.String())
	require.Equal(t, cli.CodeLoad, cli.ToExitError(err).Code)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, nil, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, nil, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
	require.Equal(t, cli.CodeUsage, cli.ToExitError(err).Code)
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, strings.NewReader("0, -1, 5"), []string{"-o", "json"})

	require.NoError(t, err)
	require.Contains(t, out.String(), `"total": 5`)
	require.Contains(t, out.String(), `"name": "-"`)
}
