package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/gendry/pkg/types"
)

// FaultyFS wraps a types.FS, failing selected paths and counting calls.
// It is safe for concurrent use.
type FaultyFS struct {
	types.FS

	mu         sync.Mutex
	errorPaths map[string]error
	counts     map[string]int
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:         base,
		errorPaths: make(map[string]error),
		counts:     make(map[string]int),
	}
}

// Fail makes every operation on path return err
func (f *FaultyFS) Fail(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorPaths[path] = err
	return f
}

// FailWithPermission makes path fail like an unreadable parent directory
func (f *FaultyFS) FailWithPermission(path string) *FaultyFS {
	return f.Fail(path, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrPermission})
}

// Count returns how many times op ("stat", "read", "write", "mkdir") was called
func (f *FaultyFS) Count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op]
}

func (f *FaultyFS) record(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[op]++
	return f.errorPaths[path]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.record("stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.record("read", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.record("write", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.record("mkdir", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}
