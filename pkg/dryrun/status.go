package dryrun

// Status is the record kept in the ledger for one target path.
// Values handed to callers are copies of the ledger's records.
type Status struct {
	Path    string `json:"path" yaml:"path"`
	Kind    Kind   `json:"state" yaml:"state"`
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewStatus builds a Status for an already-normalized path
func NewStatus(path string, kind Kind, context string) Status {
	return Status{Path: path, Kind: kind, Context: context}
}
