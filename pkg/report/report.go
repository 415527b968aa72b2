package report

import (
	"sort"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/arthur-debert/gendry/pkg/types"
)

// Entry is one ledger record plus the template data captured for it and a
// content diff, if any
type Entry struct {
	dryrun.Status
	Data map[string]any
	Diff string
}

// Report is a sorted, counted view of a ledger snapshot
type Report struct {
	// RunID identifies the simulation run; empty when not set
	RunID string

	// Policy is the write policy the run was simulated under
	Policy types.Policy

	// Captured counts the paths that had template data captured
	Captured int

	Entries []Entry
	Counts  map[dryrun.Kind]int
	Total   int
}

// Build creates a Report from statuses. The input slice is not modified.
func Build(statuses []dryrun.Status) *Report {
	r := &Report{
		Entries: make([]Entry, 0, len(statuses)),
		Counts:  make(map[dryrun.Kind]int, len(dryrun.AllKinds())),
	}
	for _, k := range dryrun.AllKinds() {
		r.Counts[k] = 0
	}
	for _, s := range statuses {
		r.Entries = append(r.Entries, Entry{Status: s})
		r.Counts[s.Kind]++
	}
	sort.Slice(r.Entries, func(i, j int) bool {
		return r.Entries[i].Path < r.Entries[j].Path
	})
	r.Total = len(r.Entries)
	return r
}

// AttachData fills Entry.Data from lookup. Empty results are left nil.
func (r *Report) AttachData(lookup func(path string) map[string]any) *Report {
	for i := range r.Entries {
		if data := lookup(r.Entries[i].Path); len(data) > 0 {
			r.Entries[i].Data = data
		}
	}
	return r
}

// AttachDiffs sets Entry.Diff for every path in diffs
func (r *Report) AttachDiffs(diffs map[string]string) *Report {
	for i := range r.Entries {
		if d, ok := diffs[r.Entries[i].Path]; ok {
			r.Entries[i].Diff = d
		}
	}
	return r
}

// FromManager builds a Report from everything m recorded, including the
// policy it ran under and how many paths had data captured
func FromManager(m *dryrun.Manager) *Report {
	r := Build(m.Statuses())
	r.Policy = m.Policy()
	r.Captured = m.CapturedCount()
	return r
}

// Writes returns how many entries a real writer would touch
func (r *Report) Writes() int {
	return r.Counts[dryrun.KindWrite] + r.Counts[dryrun.KindWriteIfNewer]
}

// document is the shape shared by the JSON and YAML renderers
type document struct {
	Run      string         `json:"run,omitempty" yaml:"run,omitempty"`
	Policy   policyDocument `json:"policy" yaml:"policy"`
	Total    int            `json:"total" yaml:"total"`
	Captured int            `json:"captured,omitempty" yaml:"captured,omitempty"`
	Counts   map[string]int `json:"counts" yaml:"counts"`
	Files    []fileDocument `json:"files" yaml:"files"`
}

type policyDocument struct {
	SkipOverwrite bool `json:"skip_overwrite" yaml:"skip_overwrite"`
	MinimalUpdate bool `json:"minimal_update" yaml:"minimal_update"`
}

type fileDocument struct {
	Path    string         `json:"path" yaml:"path"`
	State   string         `json:"state" yaml:"state"`
	Code    string         `json:"code" yaml:"code"`
	Context string         `json:"context,omitempty" yaml:"context,omitempty"`
	Data    map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Diff    string         `json:"diff,omitempty" yaml:"diff,omitempty"`
}

func (r *Report) document(showData bool) document {
	doc := document{
		Run:      r.RunID,
		Policy:   policyDocument{SkipOverwrite: r.Policy.SkipOverwrite, MinimalUpdate: r.Policy.MinimalUpdate},
		Total:    r.Total,
		Captured: r.Captured,
		Counts:   make(map[string]int, len(r.Counts)),
		Files:    make([]fileDocument, 0, len(r.Entries)),
	}
	for k, n := range r.Counts {
		doc.Counts[k.String()] = n
	}
	for _, e := range r.Entries {
		f := fileDocument{
			Path:    e.Path,
			State:   e.Kind.String(),
			Code:    e.Kind.Code(),
			Context: e.Context,
			Diff:    e.Diff,
		}
		if showData {
			f.Data = e.Data
		}
		doc.Files = append(doc.Files, f)
	}
	return doc
}
