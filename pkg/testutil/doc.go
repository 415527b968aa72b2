// Package testutil provides filesystem fixtures for gendry tests.
//
// Key components:
//   - NewMemoryFS: afero-backed types.FS pre-populated with files
//   - FaultyFS: wrapper injecting per-path errors and counting calls
//
// Tests should prefer the in-memory filesystem and keep fixtures inline.
// Use t.TempDir() only where a real disk is the point of the test.
package testutil
