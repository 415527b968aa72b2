package dryrun

// TargetHandle identifies where a simulated write would have landed.
// It is not a file: it cannot be opened, read or written. The zero value
// is returned alongside errors and carries no decision.
type TargetHandle struct {
	path     string
	kind     Kind
	recorded bool
}

func newTargetHandle(path string, kind Kind) TargetHandle {
	return TargetHandle{path: path, kind: kind, recorded: true}
}

// Path returns the absolute target path
func (t TargetHandle) Path() string { return t.path }

// Kind returns the status recorded for the target when the handle was issued.
// Check Recorded first; an empty handle has no kind.
func (t TargetHandle) Kind() Kind { return t.kind }

// Recorded reports whether the handle stands for a ledger entry
func (t TargetHandle) Recorded() bool { return t.recorded }

func (t TargetHandle) String() string {
	if !t.recorded {
		return ""
	}
	return t.kind.Code() + " " + t.path
}
