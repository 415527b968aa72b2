// Package types defines the interfaces and small values shared across gendry:
// the FS abstraction used for existence checks, the write Policy, and the
// TemplateProcessor surface a generator drives.
package types
