package plan

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlPlan = `
outputs:
  - path: src/api.go
    template: api.mustache
    data:
      package: api
      models: [Pet, Order]
  - path: /abs/README.md
    action: skip
    context: unchanged
  - path: .openapi-generator-ignore
    action: IGNORE
    context: excluded by filter
  - path: src/broken.go
    action: error
    context: template render failed
  - path: VERSION
    action: file
    contents: "7.0.0"
`

const tomlPlan = `
[[outputs]]
path = "src/api.go"
action = "write"
template = "api.mustache"

[outputs.data]
package = "api"

[[outputs]]
path = "docs/index.md"
action = "ignore"
context = "docs disabled"
`

func TestParseYAML(t *testing.T) {
	p, err := Parse([]byte(yamlPlan), FormatYAML)
	require.NoError(t, err)
	require.Len(t, p.Outputs, 5)

	assert.Equal(t, ActionWrite, p.Outputs[0].Action, "missing action defaults to write")
	assert.Equal(t, "api", p.Outputs[0].Data["package"])
	assert.Equal(t, []any{"Pet", "Order"}, p.Outputs[0].Data["models"])
	assert.Equal(t, ActionIgnore, p.Outputs[2].Action, "actions are case-insensitive")
	assert.Equal(t, "7.0.0", p.Outputs[4].Contents)
}

func TestParseJSONAsYAML(t *testing.T) {
	p, err := Parse([]byte(`{"outputs":[{"path":"a.go","action":"skip","context":"c"}]}`), FormatForPath("plan.json"))
	require.NoError(t, err)
	assert.Equal(t, ActionSkip, p.Outputs[0].Action)
}

func TestParseTOML(t *testing.T) {
	p, err := Parse([]byte(tomlPlan), FormatTOML)
	require.NoError(t, err)
	require.Len(t, p.Outputs, 2)
	assert.Equal(t, "api", p.Outputs[0].Data["package"])
	assert.Equal(t, "docs disabled", p.Outputs[1].Context)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{"malformed yaml", "outputs: [", errors.ErrPlanLoad},
		{"missing path", "outputs:\n  - action: write\n", errors.ErrPlanInvalid},
		{"unknown action", "outputs:\n  - path: a\n    action: copy\n", errors.ErrPlanInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	_, err := Parse([]byte("x"), Format("ini"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoadSetsBaseDir(t *testing.T) {
	mem := filesystem.NewMemoryFS()
	require.NoError(t, mem.MkdirAll("/work/gen", 0755))
	require.NoError(t, mem.WriteFile("/work/gen/plan.toml", []byte(tomlPlan), 0644))

	p, err := Load(mem, "/work/gen/plan.toml")
	require.NoError(t, err)
	assert.Equal(t, "/work/gen", p.BaseDir)
	assert.Equal(t, filepath.Join("/work/gen", "src/api.go"), p.Resolve(p.Outputs[0]))
	assert.Equal(t, "/abs/x", p.Resolve(Entry{Path: "/abs/x"}))

	_, err = Load(mem, "/work/missing.yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlanLoad))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("plan.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("plan.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("plan.json"))
}

func TestFileContents(t *testing.T) {
	p := &Plan{BaseDir: "/gen", Outputs: []Entry{
		{Path: "VERSION", Action: ActionFile, Contents: "1"},
		{Path: "api.go", Action: ActionWrite, Contents: "ignored"},
		{Path: "/gen/VERSION", Action: ActionFile, Contents: "2"},
	}}
	assert.Equal(t, map[string][]byte{"/gen/VERSION": []byte("2")}, p.FileContents())
}
