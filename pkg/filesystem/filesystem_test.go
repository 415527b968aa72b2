package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "out", "models")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	target := filepath.Join(dir, "pet.go")
	_, err := fsys.Stat(target)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, fsys.WriteFile(target, []byte("package models\n"), 0644))

	info, err := fsys.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, "pet.go", info.Name())
	assert.False(t, info.IsDir())

	content, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package models\n", string(content))

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory should fail")
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), "/")
}

func TestNewMemoryFSIsIsolated(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "only-in-memory.txt")

	mem := NewMemoryFS()
	require.NoError(t, mem.MkdirAll(tmpDir, 0755))
	require.NoError(t, mem.WriteFile(target, []byte("x"), 0644))

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err), "memory fs must not touch disk")
}
