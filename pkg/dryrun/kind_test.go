package dryrun

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKindLegend(t *testing.T) {
	codes := map[string]bool{}
	for _, k := range AllKinds() {
		assert.True(t, k.Valid())
		assert.NotContains(t, codes, k.Code(), "codes must be unique")
		codes[k.Code()] = true
	}
	assert.Len(t, AllKinds(), 6)

	assert.Equal(t, "write-if-newer", KindWriteIfNewer.String())
	assert.Equal(t, "k", KindSkipped.Code())
	assert.Equal(t, "Skipped Overwrite", KindSkippedOverwrite.Description())

	unknown := Kind(42)
	assert.False(t, unknown.Valid())
	assert.Equal(t, "kind(42)", unknown.String())
	assert.Equal(t, "?", unknown.Code())
}

func TestKindIsWrite(t *testing.T) {
	assert.True(t, KindWrite.IsWrite())
	assert.True(t, KindWriteIfNewer.IsWrite())
	assert.False(t, KindSkippedOverwrite.IsWrite())
	assert.False(t, KindError.IsWrite())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Skipped-Overwrite ")
	require.NoError(t, err)
	assert.Equal(t, KindSkippedOverwrite, k)

	k, err = ParseKind("n")
	require.NoError(t, err)
	assert.Equal(t, KindWriteIfNewer, k)

	_, err = ParseKind("overwritten")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStatusEncoding(t *testing.T) {
	s := NewStatus("/out/foo.txt", KindIgnored, "excluded by filter")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/out/foo.txt","state":"ignored","context":"excluded by filter"}`, string(data))

	var decoded Status
	require.NoError(t, yaml.Unmarshal([]byte("path: /out/a\nstate: write-if-newer\n"), &decoded))
	assert.Equal(t, NewStatus("/out/a", KindWriteIfNewer, ""), decoded)

	_, err = json.Marshal(Status{Path: "/x", Kind: Kind(9)})
	assert.Error(t, err)
}
