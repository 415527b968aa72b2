package preview

import (
	"testing"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	fsys := testutil.NewMemoryFS(t)
	testutil.WriteFile(t, fsys, "/out/VERSION", "1.0.0\n")

	t.Run("changed file", func(t *testing.T) {
		diff, err := Diff(fsys, "/out/VERSION", []byte("1.1.0\n"))
		require.NoError(t, err)
		assert.Contains(t, diff, "--- /out/VERSION (current)")
		assert.Contains(t, diff, "+++ /out/VERSION (planned)")
		assert.Contains(t, diff, "-1.0.0")
		assert.Contains(t, diff, "+1.1.0")
	})

	t.Run("unchanged file", func(t *testing.T) {
		diff, err := Diff(fsys, "/out/VERSION", []byte("1.0.0\n"))
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("new file", func(t *testing.T) {
		diff, err := Diff(fsys, "/out/NEW", []byte("hello\n"))
		require.NoError(t, err)
		assert.Contains(t, diff, "+hello")
	})

	t.Run("unreadable file", func(t *testing.T) {
		faulty := testutil.NewFaultyFS(fsys).FailWithPermission("/out/VERSION")
		_, err := Diff(faulty, "/out/VERSION", []byte("x"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	// the preview never writes
	data, err := fsys.ReadFile("/out/VERSION")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n", string(data))
}
