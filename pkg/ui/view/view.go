// Package view turns command results into a format-neutral outline that
// the text and terminal renderers draw.
package view

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/sortdir/pkg/types"
)

// Tone hints how a line should be emphasized
type Tone int

const (
	ToneNormal Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
	ToneMuted
)

// Fact is one labeled value
type Fact struct {
	Label string
	Value string
	Tone  Tone
}

// Table is a titled grid
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	// Truncated counts rows left out
	Truncated int
}

// Note is a free-standing line after the facts and tables
type Note struct {
	Text string
	Tone Tone
}

// View is the outline of one result
type View struct {
	Title  string
	Facts  []Fact
	Tables []Table
	Notes  []Note
}

// MaxRows caps how many moves a table lists
const MaxRows = 20

// FromResult builds the view of a known result type
func FromResult(result interface{}) (*View, bool) {
	switch v := result.(type) {
	case *types.OrganizeResult:
		return Organize(v), true
	case *types.RestoreResult:
		return Restore(v), true
	case *types.StatusResult:
		return Status(v), true
	}
	return nil, false
}

// Organize describes an organize run
func Organize(r *types.OrganizeResult) *View {
	v := &View{Title: "Organized " + r.BaseDirectory}
	if r.Interrupted {
		v.Title = "Organize interrupted in " + r.BaseDirectory
	}

	moved := Fact{Label: "Files moved", Value: fmt.Sprintf("%d of %d", r.Moved, r.Attempted), Tone: ToneSuccess}
	if r.Moved == 0 {
		moved.Tone = ToneMuted
	}
	v.Facts = append(v.Facts, moved)
	if r.Skipped > 0 {
		v.Facts = append(v.Facts, Fact{Label: "Already in place", Value: fmt.Sprint(r.Skipped), Tone: ToneMuted})
	}
	v.Facts = append(v.Facts,
		Fact{Label: "Buckets", Value: bucketList(r.CreatedDirectories)},
		Fact{Label: "Directories removed", Value: fmt.Sprint(len(r.RemovedDirectories))},
	)
	if r.Resumed {
		v.Facts = append(v.Facts, Fact{Label: "Resumed", Value: "yes, from existing change log", Tone: ToneMuted})
	}
	if r.LogFile != "" {
		v.Facts = append(v.Facts, Fact{Label: "Change log", Value: r.LogFile})
	}
	v.Facts = append(v.Facts, Fact{Label: "Duration", Value: r.Duration.Round(time.Millisecond).String(), Tone: ToneMuted})

	if len(r.Moves) > 0 {
		table := Table{Title: "Moves", Header: []string{"From", "To"}}
		for i, m := range r.Moves {
			if i == MaxRows {
				table.Truncated = len(r.Moves) - MaxRows
				break
			}
			table.Rows = append(table.Rows, []string{rel(r.BaseDirectory, m.OldPath), rel(r.BaseDirectory, m.NewPath)})
		}
		v.Tables = append(v.Tables, table)
	}
	if t, ok := failureTable(r.BaseDirectory, r.Failures); ok {
		v.Tables = append(v.Tables, t)
	}

	switch {
	case r.OrphanedLog != "":
		v.Notes = append(v.Notes, Note{
			Text: "The change log could not be written into the directory. It was saved to " + r.OrphanedLog +
				"; restore with: sortdir restore " + r.OrphanedLog,
			Tone: ToneError,
		})
	case r.Interrupted:
		v.Notes = append(v.Notes, Note{Text: "Run organize again to finish, or restore to undo the partial run.", Tone: ToneWarning})
	case r.Moved > 0:
		v.Notes = append(v.Notes, Note{Text: "Undo with: sortdir restore " + r.LogFile, Tone: ToneMuted})
	}
	return v
}

// Restore describes a restore run
func Restore(r *types.RestoreResult) *View {
	v := &View{Title: "Restored " + r.BaseDirectory}

	v.Facts = append(v.Facts,
		Fact{Label: "Files restored", Value: fmt.Sprint(r.Restored), Tone: ToneSuccess},
		Fact{Label: "Directories recreated", Value: fmt.Sprint(r.RecreatedDirectories)},
		Fact{Label: "Directories removed", Value: fmt.Sprint(len(r.RemovedDirectories))},
	)
	if r.Renamed > 0 {
		v.Facts = append(v.Facts, Fact{Label: "Restored under new name", Value: fmt.Sprint(r.Renamed), Tone: ToneWarning})
	}
	if r.Missing > 0 {
		v.Facts = append(v.Facts, Fact{Label: "Missing", Value: fmt.Sprint(r.Missing), Tone: ToneError})
	}
	logState := Fact{Label: "Change log", Value: "removed", Tone: ToneMuted}
	if !r.LogRemoved {
		logState = Fact{Label: "Change log", Value: "kept at " + r.LogFile, Tone: ToneWarning}
	}
	v.Facts = append(v.Facts, logState,
		Fact{Label: "Duration", Value: r.Duration.Round(time.Millisecond).String(), Tone: ToneMuted})

	if t, ok := failureTable(r.BaseDirectory, r.Failures); ok {
		v.Tables = append(v.Tables, t)
	}
	return v
}

// Status describes a directory's change log
func Status(r *types.StatusResult) *View {
	v := &View{Title: r.Directory}
	if !r.HasLog {
		v.Notes = append(v.Notes, Note{Text: "No change log here. The directory has not been organized by sortdir.", Tone: ToneMuted})
		return v
	}

	restorable := Fact{Label: "Restorable moves", Value: fmt.Sprintf("%d of %d", r.Restorable, r.Moves), Tone: ToneSuccess}
	if r.Restorable < r.Moves {
		restorable.Tone = ToneWarning
	}
	v.Facts = append(v.Facts,
		Fact{Label: "Change log", Value: r.LogFile},
		Fact{Label: "Buckets", Value: bucketList(r.CreatedDirectories)},
		Fact{Label: "Directories removed", Value: fmt.Sprint(r.RemovedDirectories)},
		restorable,
	)

	if len(r.Stale) > 0 {
		table := Table{Title: "Files no longer where organize left them", Header: []string{"Originally", "Expected at"}}
		for i, m := range r.Stale {
			if i == MaxRows {
				table.Truncated = len(r.Stale) - MaxRows
				break
			}
			table.Rows = append(table.Rows, []string{rel(r.Directory, m.OldPath), rel(r.Directory, m.NewPath)})
		}
		v.Tables = append(v.Tables, table)
	}
	return v
}

func failureTable(base string, failures []types.Failure) (Table, bool) {
	if len(failures) == 0 {
		return Table{}, false
	}
	table := Table{Title: "Failures", Header: []string{"Path", "Code", "Error"}}
	for _, f := range failures {
		table.Rows = append(table.Rows, []string{rel(base, f.Path), f.Code, f.Error})
	}
	return table, true
}

func bucketList(dirs []string) string {
	if len(dirs) == 0 {
		return "none"
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = filepath.Base(d)
	}
	return strings.Join(names, ", ")
}

func rel(base, path string) string {
	if r, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(r, "..") {
		return r
	}
	return path
}
