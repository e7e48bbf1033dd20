// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/ui/styles"
	"github.com/arthur-debert/sortdir/pkg/ui/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

func toneStyle(t view.Tone) string {
	switch t {
	case view.ToneSuccess:
		return "Success"
	case view.ToneWarning:
		return "Warning"
	case view.ToneError:
		return "Error"
	case view.ToneMuted:
		return "Muted"
	}
	return "Value"
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	v, ok := view.FromResult(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	var blocks []string
	blocks = append(blocks, styles.Render("Header", v.Title))

	if len(v.Facts) > 0 {
		lines := make([]string, 0, len(v.Facts))
		for _, f := range v.Facts {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.Render("Label", f.Label),
				styles.Render(toneStyle(f.Tone), f.Value),
			))
		}
		blocks = append(blocks, styles.GetStyle("Indent").Render(strings.Join(lines, "\n")))
	}

	for _, t := range v.Tables {
		blocks = append(blocks,
			styles.Render("SubHeader", t.Title),
			view.RenderTable(t, table.StyleRounded),
		)
	}

	for _, n := range v.Notes {
		style := toneStyle(n.Tone)
		if n.Tone == view.ToneMuted {
			style = "MutedItalic"
		}
		blocks = append(blocks, "", styles.Render(style, n.Text))
	}

	_, err := fmt.Fprintln(r.output, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(styles.Render("Error", "Error"))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		b.WriteString(" " + styles.Render("Code", string(code)))
	}
	b.WriteString("\n")

	msg := err.Error()
	var sortdirErr *errors.SortdirError
	if errors.As(err, &sortdirErr) {
		msg = sortdirErr.Message
		if sortdirErr.Wrapped != nil {
			msg += ": " + sortdirErr.Wrapped.Error()
		}
	}
	b.WriteString(styles.GetStyle("Indent").Render(msg))

	_, werr := fmt.Fprintln(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Muted", msg))
	return err
}
