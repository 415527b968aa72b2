package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/states.md":                 {Data: []byte("# States\n\nw Write")},
		"help/plan-format.txt":           {Data: []byte("Plan files list outputs")},
		"help/option-skip-overwrite.md":  {Data: []byte("Never overwrite existing files")},
		"help/nested/minimal-update.txt": {Data: []byte("Conditional writes")},
		"help/notes.json":                {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help", Options{})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"minimal-update", "option-skip-overwrite", "plan-format", "states"}, tm.ListTopics())
		topic, ok := tm.GetTopic("states")
		require.True(t, ok)
		assert.Equal(t, "# States\n\nw Write", topic.Content)
		assert.Equal(t, "help/states.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), "help", Options{Extensions: []string{".md"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"option-skip-overwrite", "states"}, tm.ListTopics())
	})

	t.Run("missing root", func(t *testing.T) {
		tm := New(testFS(), "nope", Options{})
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagSpelling(t *testing.T) {
	tm := New(testFS(), "help", Options{})
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--skip-overwrite", "-skip-overwrite", "skip-overwrite", "option-skip-overwrite"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-skip-overwrite", topic.Name)
	}
	_, ok := tm.GetTopic("unknown")
	assert.False(t, ok)
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	if format == ".md" {
		return strings.ToUpper(content)
	}
	return content
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "gendry"}
	root.AddCommand(&cobra.Command{Use: "simulate", Short: "Replay a plan", Run: func(*cobra.Command, []string) {}})
	_, err := Initialize(root, testFS(), "help", opts)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:\n  minimal-update\n  plan-format\n  states\n")
		assert.Contains(t, out.String(), "Option topics:\n  --skip-overwrite\n")
		assert.Contains(t, out.String(), "Use 'gendry help <topic>'")
	})

	t.Run("renders a topic", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "states"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# STATES\n\nW WRITE", out.String())
	})

	t.Run("txt topics bypass markdown rendering", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "plan-format"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Plan files list outputs", out.String())
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "simulate"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Replay a plan")
	})
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
	assert.Equal(t, "text", NewGlamourRenderer().Render("text", ".txt"))
}
