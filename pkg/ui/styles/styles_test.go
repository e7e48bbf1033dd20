package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"Header", "SubHeader", "Label", "Value",
		"Success", "Error", "Warning", "Muted", "MutedItalic",
		"FilePath", "Code", "Indent",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := styles.StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestRender_KeepsText(t *testing.T) {
	assert.Contains(t, styles.Render("Error", "boom"), "boom")
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		_ = styles.LoadStyles("styles.yaml")
	})

	t.Run("rejects incomplete definitions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "styles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("styles:\n  Header:\n    bold: true\n"), 0644))

		err := styles.LoadStyles(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		err := styles.LoadStylesFromData([]byte("styles: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("loads file", func(t *testing.T) {
		require.NoError(t, styles.LoadStyles("styles.yaml"))
		assert.IsType(t, lipgloss.Style{}, styles.GetStyle("Header"))
	})
}
