package types

// Policy holds the caller-owned write flags consulted by the dry-run manager
type Policy struct {
	// SkipOverwrite forbids any write to a path that already exists
	SkipOverwrite bool `koanf:"skip_overwrite" json:"skipOverwrite" yaml:"skipOverwrite"`

	// MinimalUpdate defers writes to a staleness comparison by the real writer
	MinimalUpdate bool `koanf:"minimal_update" json:"minimalUpdate" yaml:"minimalUpdate"`
}
