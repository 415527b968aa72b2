package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gendry/pkg/filesystem"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/stretchr/testify/require"
)

// ExistingContent is written to files created by NewMemoryFS
const ExistingContent = "existing"

// NewMemoryFS returns an in-memory filesystem in which every path in
// existing is a regular file
func NewMemoryFS(t testing.TB, existing ...string) types.FS {
	t.Helper()
	fsys := filesystem.NewMemoryFS()
	for _, p := range existing {
		WriteFile(t, fsys, p, ExistingContent)
	}
	return fsys
}

// WriteFile creates path with content, making parent directories as needed
func WriteFile(t testing.TB, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// WriteFiles creates every path => content pair in files
func WriteFiles(t testing.TB, fsys types.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		WriteFile(t, fsys, path, content)
	}
}
