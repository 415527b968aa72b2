package preview

import (
	stderrors "errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/types"
	udiff "github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff from the current contents of path to
// planned. A missing file diffs against empty contents. Identical contents
// give an empty string.
func Diff(fsys types.FS, path string, planned []byte) (string, error) {
	current, err := fsys.ReadFile(path)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) && !stderrors.Is(err, syscall.ENOTDIR) {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
				WithDetail("path", path)
		}
		current = nil
	}

	if string(current) == string(planned) {
		return "", nil
	}
	return udiff.Unified(path+" (current)", path+" (planned)", string(current), string(planned)), nil
}
