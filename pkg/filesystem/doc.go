// Package filesystem provides filesystem implementations for gendry.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one used for in-memory runs
// and tests.
package filesystem
