// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/ui/view"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	v, ok := view.FromResult(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	var b strings.Builder
	b.WriteString(v.Title + "\n\n")

	width := 0
	for _, f := range v.Facts {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range v.Facts {
		fmt.Fprintf(&b, "  %-*s  %s\n", width+1, f.Label+":", f.Value)
	}

	for _, t := range v.Tables {
		fmt.Fprintf(&b, "\n%s\n", t.Title)
		b.WriteString(view.RenderTable(t, table.StyleDefault))
		b.WriteString("\n")
	}

	for _, n := range v.Notes {
		fmt.Fprintf(&b, "\n%s\n", n.Text)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	msg := fmt.Sprintf("Error: %v\n", err)
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		for _, key := range slices.Sorted(maps.Keys(details)) {
			msg += fmt.Sprintf("  %s: %v\n", key, details[key])
		}
	}
	_, err2 := io.WriteString(r.output, msg)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
