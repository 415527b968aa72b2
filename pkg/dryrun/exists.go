package dryrun

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/types"
)

// normalizePath makes path absolute and clean. If the working directory is
// unavailable the cleaned input is used.
func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// exists reports whether path is present on fsys. Only "not found" and
// "not a directory" count as absent; any other failure is returned so a
// report is never built on a guess.
func exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, fs.ErrNotExist), stderrors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot check whether %s exists", path).
			WithDetail("path", path)
	}
}
