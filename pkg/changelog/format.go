package changelog

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/types"
)

const (
	createdPrefix = "+ "
	moveSeparator = " -> "
)

// ParseOptions controls how strictly Parse treats unrecognized lines.
type ParseOptions struct {
	// Strict requires every path in the log to be absolute, inside the base
	// directory and unambiguous to split. In lenient mode
	// (the default) any line that is neither a created directory nor a move
	// is taken as a removed directory, because the two are indistinguishable
	// on disk.
	Strict bool
}

// WriteTo writes the text form of the log to w: the base directory, then
// "+ <dir>" per created directory, "<dir>" per removed directory and
// "<old> -> <new>" per move.
func (l *ChangeLog) WriteTo(w io.Writer) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bw := bufio.NewWriter(w)
	var n int64
	line := func(s string) error {
		written, err := bw.WriteString(s + "\n")
		n += int64(written)
		return err
	}

	if err := line(l.baseDirectory); err != nil {
		return n, err
	}
	for _, dir := range l.created.items {
		if err := line(createdPrefix + dir); err != nil {
			return n, err
		}
	}
	for _, dir := range l.removed.items {
		if err := line(dir); err != nil {
			return n, err
		}
	}
	for _, m := range l.moves {
		if err := line(m.OldPath + moveSeparator + m.NewPath); err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Serialize returns the text form of the log.
func (l *ChangeLog) Serialize() string {
	var sb strings.Builder
	_, _ = l.WriteTo(&sb)
	return sb.String()
}

// Parse reads a change log in the format produced by WriteTo. Blank lines are
// ignored. A move line is split at its first " -> ", so a file whose name
// itself contains " -> " cannot be read back correctly. Strict parsing
// rejects such lines, along with relative paths and paths outside the base
// directory.
func Parse(r io.Reader, opts ParseOptions) (*ChangeLog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var log *ChangeLog
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if log == nil {
			if strings.TrimSpace(line) == "" {
				return nil, errors.New(errors.ErrCorruptLog, "change log has no base directory").
					WithDetail("line", lineNo)
			}
			if opts.Strict && !filepath.IsAbs(line) {
				return nil, corruptLine(lineNo, line, "base directory is not absolute")
			}
			log = New(line)
			continue
		}

		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, createdPrefix):
			dir := strings.TrimPrefix(line, createdPrefix)
			if opts.Strict && !filepath.IsAbs(dir) {
				return nil, corruptLine(lineNo, line, "created directory is not absolute")
			}
			if opts.Strict && !paths.IsWithin(dir, log.baseDirectory) {
				return nil, corruptLine(lineNo, line, "created directory is outside the base directory")
			}
			log.created.add(dir)
		case strings.Contains(line, moveSeparator):
			oldPath, newPath, _ := strings.Cut(line, moveSeparator)
			if opts.Strict {
				if strings.Count(line, moveSeparator) > 1 {
					return nil, corruptLine(lineNo, line, "move line has more than one separator")
				}
				if !filepath.IsAbs(oldPath) || !filepath.IsAbs(newPath) {
					return nil, corruptLine(lineNo, line, "move paths are not absolute")
				}
				if !paths.IsWithin(oldPath, log.baseDirectory) || !paths.IsWithin(newPath, log.baseDirectory) {
					return nil, corruptLine(lineNo, line, "move leaves the base directory")
				}
			}
			log.moves = append(log.moves, types.MoveRecord{OldPath: oldPath, NewPath: newPath})
		default:
			if opts.Strict && !filepath.IsAbs(line) {
				return nil, corruptLine(lineNo, line, "unrecognized line")
			}
			if opts.Strict && !paths.IsWithin(line, log.baseDirectory) {
				return nil, corruptLine(lineNo, line, "removed directory is outside the base directory")
			}
			log.removed.add(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrLogRead, "failed to read change log")
	}
	if log == nil {
		return nil, errors.New(errors.ErrCorruptLog, "change log is empty")
	}
	return log, nil
}

func corruptLine(lineNo int, line, reason string) error {
	return errors.Newf(errors.ErrCorruptLog, "line %d: %s", lineNo, reason).
		WithDetail("line", lineNo).
		WithDetail("content", line)
}
