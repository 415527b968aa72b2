package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryFS(t *testing.T) {
	fsys := NewMemoryFS(t, "/out/a.go", "/out/nested/b.go")

	data, err := fsys.ReadFile("/out/nested/b.go")
	require.NoError(t, err)
	assert.Equal(t, ExistingContent, string(data))

	_, err = fsys.Stat("/out/c.go")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	WriteFiles(t, fsys, map[string]string{"/x/y.txt": "y"})
	data, err = fsys.ReadFile("/x/y.txt")
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))
}

func TestFaultyFS(t *testing.T) {
	f := NewFaultyFS(NewMemoryFS(t, "/ok.txt")).FailWithPermission("/locked/file.txt")

	_, err := f.Stat("/ok.txt")
	require.NoError(t, err)

	_, err = f.Stat("/locked/file.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)

	_, err = f.ReadFile("/locked/file.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.Equal(t, 2, f.Count("stat"))
	assert.Equal(t, 1, f.Count("read"))
	assert.Equal(t, 0, f.Count("write"))

	require.NoError(t, f.WriteFile("/new.txt", []byte("n"), 0644))
	_, err = f.Stat("/new.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count("write"))
	assert.Equal(t, 3, f.Count("stat"))
}
