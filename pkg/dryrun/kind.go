package dryrun

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gendry/pkg/errors"
)

// Kind is the decided outcome recorded for a target path
type Kind int

const (
	// KindWrite means the file would be written unconditionally
	KindWrite Kind = iota
	// KindWriteIfNewer means the real writer would only write a new or changed file
	KindWriteIfNewer
	// KindSkipped means the generator chose not to write the file
	KindSkipped
	// KindSkippedOverwrite means the file exists and overwrite protection is on
	KindSkippedOverwrite
	// KindIgnored means the file was excluded from the run, e.g. by an ignore rule
	KindIgnored
	// KindError means evaluating the write failed
	KindError
)

type kindInfo struct {
	name        string
	code        string
	description string
}

var kindTable = map[Kind]kindInfo{
	KindWrite:            {"write", "w", "Write"},
	KindWriteIfNewer:     {"write-if-newer", "n", "Write if New/Updated"},
	KindIgnored:          {"ignored", "i", "Ignored"},
	KindSkippedOverwrite: {"skipped-overwrite", "s", "Skipped Overwrite"},
	KindSkipped:          {"skipped", "k", "Skipped by user option(s)"},
	KindError:            {"error", "e", "Error evaluating file write state"},
}

// AllKinds lists every kind in legend order
func AllKinds() []Kind {
	return []Kind{KindWrite, KindWriteIfNewer, KindIgnored, KindSkippedOverwrite, KindSkipped, KindError}
}

// String returns the kind's name, e.g. "write-if-newer"
func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Code returns the one-letter code used in summaries
func (k Kind) Code() string {
	if info, ok := kindTable[k]; ok {
		return info.code
	}
	return "?"
}

// Description returns the human-readable legend text
func (k Kind) Description() string {
	if info, ok := kindTable[k]; ok {
		return info.description
	}
	return "Unknown"
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// IsWrite reports whether a real writer would touch the file
func (k Kind) IsWrite() bool {
	return k == KindWrite || k == KindWriteIfNewer
}

// ParseKind converts a name (or one-letter code) back into a Kind
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllKinds() {
		info := kindTable[k]
		if s == info.name || s == info.code {
			return k, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown status kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot marshal status kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
