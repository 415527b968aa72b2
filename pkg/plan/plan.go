package plan

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Action names what the generator does with an entry
type Action string

const (
	ActionWrite  Action = "write"
	ActionFile   Action = "file"
	ActionSkip   Action = "skip"
	ActionIgnore Action = "ignore"
	ActionError  Action = "error"
)

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	switch a {
	case ActionWrite, ActionFile, ActionSkip, ActionIgnore, ActionError:
		return true
	}
	return false
}

// Entry is one candidate output
type Entry struct {
	Path     string         `yaml:"path" toml:"path" json:"path"`
	Action   Action         `yaml:"action,omitempty" toml:"action,omitempty" json:"action,omitempty"`
	Template string         `yaml:"template,omitempty" toml:"template,omitempty" json:"template,omitempty"`
	Data     map[string]any `yaml:"data,omitempty" toml:"data,omitempty" json:"data,omitempty"`
	Contents string         `yaml:"contents,omitempty" toml:"contents,omitempty" json:"contents,omitempty"`
	Context  string         `yaml:"context,omitempty" toml:"context,omitempty" json:"context,omitempty"`
}

// Plan is an ordered list of candidate outputs
type Plan struct {
	Outputs []Entry `yaml:"outputs" toml:"outputs" json:"outputs"`

	// BaseDir anchors relative entry paths; Load sets it to the plan's directory
	BaseDir string `yaml:"-" toml:"-" json:"-"`
}

// Format identifies a plan encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension. JSON is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and validates the plan at path
func Load(fsys types.FS, path string) (*Plan, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlanLoad, "failed to read plan %s", path).
			WithDetail("path", path)
	}

	p, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		abs = filepath.Dir(path)
	}
	p.BaseDir = abs
	return p, nil
}

// Parse decodes and validates a plan
func Parse(data []byte, format Format) (*Plan, error) {
	var p Plan
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return nil, errors.Wrap(err, errors.ErrPlanLoad, "failed to parse TOML plan")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, errors.ErrPlanLoad, "failed to parse YAML plan")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown plan format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate fills default actions and rejects entries that cannot be replayed
func (p *Plan) Validate() error {
	for i := range p.Outputs {
		e := &p.Outputs[i]
		if strings.TrimSpace(e.Path) == "" {
			return errors.Newf(errors.ErrPlanInvalid, "entry %d has no path", i).WithDetail("index", i)
		}
		if e.Action == "" {
			e.Action = ActionWrite
		}
		e.Action = Action(strings.ToLower(string(e.Action)))
		if !e.Action.Valid() {
			return errors.Newf(errors.ErrPlanInvalid, "entry %d: unknown action %q", i, e.Action).
				WithDetail("index", i).
				WithDetail("path", e.Path)
		}
	}
	return nil
}

// Resolve returns the entry path anchored at BaseDir when relative
func (p *Plan) Resolve(e Entry) string {
	if filepath.IsAbs(e.Path) || p.BaseDir == "" {
		return e.Path
	}
	return filepath.Join(p.BaseDir, e.Path)
}

// FileContents maps the resolved path of every file entry to its contents.
// Later entries for the same path win.
func (p *Plan) FileContents() map[string][]byte {
	contents := make(map[string][]byte)
	for _, e := range p.Outputs {
		if e.Action == ActionFile {
			contents[p.Resolve(e)] = []byte(e.Contents)
		}
	}
	return contents
}
