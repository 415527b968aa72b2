package types

import (
	"io/fs"
)

// FS is the filesystem interface required for gendry operations.
// The dry-run core only ever calls Stat; the write side exists for the CLI's
// report output.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// Target is the minimal view of a location a TemplateProcessor was asked to write
type Target interface {
	Path() string
}

// TemplateProcessor is the write surface a generator drives once per candidate
// output. The dry-run manager implements it without writing; a real writer would
// implement it by writing.
type TemplateProcessor interface {
	// Write renders data for templateRef into target
	Write(data map[string]any, templateRef, target string) (Target, error)

	// WriteToFile writes contents to path
	WriteToFile(path string, contents []byte) (Target, error)

	// Skip records that the generator chose not to write path
	Skip(path, context string) error

	// Ignore records that path is excluded from this run
	Ignore(path, context string)

	// Error records that producing path failed. It is a status, not a fault.
	Error(path, context string)
}
