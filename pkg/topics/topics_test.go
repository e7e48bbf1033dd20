// pkg/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testing/fstest MapFS, embedded topics
// PURPOSE: Test topic discovery, lookup and the cobra help integration

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

func sampleSource() fstest.MapFS {
	return fstest.MapFS{
		"option-dry-run.txt": {Data: []byte("Dry run help")},
		"option-verbose.txt": {Data: []byte("Verbose help")},
		"architecture.md":    {Data: []byte("# Architecture\n\nDetails")},
		"config.txxt":        {Data: []byte("Configuration Guide")},
		"ignore.json":        {Data: []byte("{}")},
		"nested/inner.md":    {Data: []byte("not a top level topic")},
	}
}

func TestNew_Extensions(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm, err := New(sampleSource(), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"architecture", "option-dry-run", "option-verbose"}, tm.ListTopics())
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm, err := New(sampleSource(), Options{Extensions: []string{".md", ".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"architecture", "config"}, tm.ListTopics())

		topic, ok := tm.GetTopic("config")
		require.True(t, ok)
		assert.Equal(t, "Configuration Guide", topic.Content)
	})
}

func TestGetTopic(t *testing.T) {
	tm, err := New(sampleSource(), Options{})
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"architecture", "architecture", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestWriteIndex(t *testing.T) {
	tm, err := New(sampleSource(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tm.WriteIndex(&buf, "sortdir"))
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  architecture\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n  --verbose\n")
	assert.Contains(t, out, "Use 'sortdir help <topic>'")

	empty, err := New(fstest.MapFS{}, Options{})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, empty.WriteIndex(&buf, "sortdir"))
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestRender(t *testing.T) {
	tm, err := New(sampleSource(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tm.Render(&buf, "architecture"))
	assert.Equal(t, "# Architecture\n\nDetails", buf.String())

	err = tm.Render(&buf, "missing")
	assert.Error(t, err)
}

func TestGlamourRenderer_PassesNonMarkdownThrough(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	rendered := r.Render("# Title\n\nbody", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "body")
}

func TestDefault_EmbeddedTopics(t *testing.T) {
	tm, err := Default(Options{})
	require.NoError(t, err)

	for _, name := range []string{"change-log", "idempotency", "restore", "workers", "strict-log"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, "missing topic %s", name)
		assert.True(t, strings.HasPrefix(topic.Content, "# "), "topic %s should start with a heading", name)
	}
}

func TestInstall(t *testing.T) {
	tm, err := New(sampleSource(), Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "sortdir", Short: "root short"}
		root.AddCommand(&cobra.Command{Use: "organize", Short: "organize short", Run: func(*cobra.Command, []string) {}})
		tm.Install(root)
		buf := &bytes.Buffer{}
		root.SetOut(buf)
		root.SetErr(buf)
		return root, buf
	}

	t.Run("help topics lists topics", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("help topic renders it", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "--", "--dry-run"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Dry run help", buf.String())
	})

	t.Run("help command falls back to command help", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "organize"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "organize short")
	})

	t.Run("unknown topic errors", func(t *testing.T) {
		root, _ := newRoot()
		root.SetArgs([]string{"help", "nope"})
		root.SilenceErrors = true
		root.SilenceUsage = true
		assert.Error(t, root.Execute())
	})
}
