// Package preview shows how planned file contents differ from what is on
// disk. It only reads; the dry-run manager decides whether a write happens.
package preview
