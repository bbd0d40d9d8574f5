package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tree.txt", "0, -1, 5")

	inputs, err := NewReader(nil).Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []Input{{Name: path, Text: "0, -1, 5"}}, inputs)
}

func TestRead_Directory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.tree", "0, -1, 1")
	b := writeFile(t, dir, "sub/b.txt", "0, -1, 2")
	writeFile(t, dir, "readme.md", "skip me")

	inputs, err := NewReader(nil).Read(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, a, inputs[0].Name)
	assert.Equal(t, b, inputs[1].Name)
}

func TestRead_DirectoryWithCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.tree", "0, -1, 1")
	c := writeFile(t, dir, "c.weights", "0, -1, 3")

	r := &Reader{Extensions: []string{".weights"}}
	inputs, err := r.Read(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, c, inputs[0].Name)
}

func TestRead_Stdin(t *testing.T) {
	for _, path := range []string{"", StdinName} {
		t.Run("path="+path, func(t *testing.T) {
			r := NewReader(strings.NewReader("0, -1, 9"))

			inputs, err := r.Read(context.Background(), path)

			require.NoError(t, err)
			assert.Equal(t, []Input{{Name: StdinName, Text: "0, -1, 9"}}, inputs)
		})
	}
}

func TestRead_MissingSource(t *testing.T) {
	_, err := NewReader(nil).Read(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingSource)

	_, err = NewReader(nil).Read(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestRead_FailedToLoad(t *testing.T) {
	_, err := NewReader(nil).Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	require.ErrorIs(t, err, ErrFailedToLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrMissingSource)
}
