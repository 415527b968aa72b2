package dryrun

import (
	"sync/atomic"

	"github.com/arthur-debert/gendry/pkg/filesystem"
	"github.com/arthur-debert/gendry/pkg/logging"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/rs/zerolog"
)

// placeholderContents stands in for rendered output; it is never written
var placeholderContents = []byte("dummy")

// Manager simulates the writes of one generation run and records the outcome
// for every target path it is asked about.
type Manager struct {
	policy    types.Policy
	fs        types.FS
	logger    zerolog.Logger
	ledger    *ledger
	captured  *captureTable
	capturing atomic.Bool
}

// Option configures a Manager
type Option func(*Manager)

// WithFS sets the filesystem used for existence checks
func WithFS(fsys types.FS) Option {
	return func(m *Manager) {
		if fsys != nil {
			m.fs = fsys
		}
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager with an empty ledger for a single run
func New(policy types.Policy, opts ...Option) *Manager {
	m := &Manager{
		policy:   policy,
		fs:       filesystem.NewOS(),
		logger:   logging.GetLogger("dryrun"),
		ledger:   newLedger(),
		captured: newCaptureTable(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnableTemplateDataCapturing makes later Write calls keep their data.
// Call it before the run starts; it cannot be undone.
func (m *Manager) EnableTemplateDataCapturing() *Manager {
	if !m.capturing.Swap(true) {
		m.logger.Debug().Msg("Template data capturing enabled")
	}
	return m
}

// Capturing reports whether template data capturing is on
func (m *Manager) Capturing() bool {
	return m.capturing.Load()
}

// Policy returns the policy the Manager was created with
func (m *Manager) Policy() types.Policy {
	return m.policy
}

// Write simulates rendering data into target. templateRef is only passed
// through for logging.
func (m *Manager) Write(data map[string]any, templateRef, target string) (TargetHandle, error) {
	path := normalizePath(target)
	if m.capturing.Load() {
		m.captured.put(path, data)
	}
	m.logger.Trace().
		Str("template", templateRef).
		Str("path", path).
		Int("dataKeys", len(data)).
		Msg("Simulating template write")
	return m.WriteToFile(path, placeholderContents)
}

// WriteToFile decides what writing contents to path would do and records it.
// contents are discarded. The only error is a failed existence check, in
// which case nothing is recorded and the handle is empty.
func (m *Manager) WriteToFile(path string, contents []byte) (TargetHandle, error) {
	path = normalizePath(path)

	found, err := exists(m.fs, path)
	if err != nil {
		m.logger.Error().Err(err).Str("path", path).Msg("Existence check failed")
		return TargetHandle{}, err
	}

	kind := DecideFor(m.policy, found)
	context := ""
	if kind == KindSkippedOverwrite {
		context = skipOverwriteContext
	}
	m.record(NewStatus(path, kind, context))

	return newTargetHandle(path, kind), nil
}

// Skip records that the generator chose not to write path. With
// SkipOverwrite on and path present it is recorded as KindSkippedOverwrite.
func (m *Manager) Skip(path, context string) error {
	path = normalizePath(path)
	kind := KindSkipped
	if m.policy.SkipOverwrite {
		found, err := exists(m.fs, path)
		if err != nil {
			m.logger.Error().Err(err).Str("path", path).Msg("Existence check failed")
			return err
		}
		if found {
			kind = KindSkippedOverwrite
		}
	}
	m.record(NewStatus(path, kind, context))
	return nil
}

// Ignore records path as excluded from the run. No existence check is made.
func (m *Manager) Ignore(path, context string) {
	m.record(NewStatus(normalizePath(path), KindIgnored, context))
}

// Error records that producing path failed. The run goes on; the failure is
// only visible in the ledger.
func (m *Manager) Error(path, context string) {
	m.record(NewStatus(normalizePath(path), KindError, context))
}

func (m *Manager) record(s Status) {
	m.ledger.put(s)
	m.logger.Debug().
		Str("path", s.Path).
		Str("kind", s.Kind.String()).
		Str("context", s.Context).
		Msg("Recorded dry-run status")
}

// StatusMap returns a copy of the ledger keyed by absolute path
func (m *Manager) StatusMap() map[string]Status {
	return m.ledger.snapshot()
}

// Statuses returns the ledger sorted by path
func (m *Manager) Statuses() []Status {
	return m.ledger.sorted()
}

// Status looks up the record for path
func (m *Manager) Status(path string) (Status, bool) {
	return m.ledger.get(normalizePath(path))
}

// Len returns the number of distinct paths recorded
func (m *Manager) Len() int {
	return m.ledger.len()
}

// CapturedTemplateData returns the data last passed to Write for path while
// capturing was on, or an empty map. Files produced without templates
// have no data; that is not an error.
func (m *Manager) CapturedTemplateData(path string) map[string]any {
	return m.captured.get(normalizePath(path))
}

// CapturedCount returns how many paths have captured data
func (m *Manager) CapturedCount() int {
	return m.captured.len()
}
