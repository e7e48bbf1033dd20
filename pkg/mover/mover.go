// Package mover renames files without ever overwriting an existing one.
package mover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/rs/zerolog"
)

// Recorder receives completed moves.
type Recorder interface {
	RecordMove(oldPath, newPath string)
}

// Mover picks a free name for each destination and renames into it. One
// Mover may be shared by any number of goroutines: names picked by moves
// still in flight are reserved so two workers never settle on the same
// candidate.
type Mover struct {
	fs     types.FS
	logger zerolog.Logger

	mu       sync.Mutex
	reserved map[string]struct{}
}

// New creates a Mover over fs.
func New(fs types.FS, logger zerolog.Logger) *Mover {
	return &Mover{
		fs:       fs,
		logger:   logger,
		reserved: make(map[string]struct{}),
	}
}

// Move renames oldPath to hint, or to the first of "stem (1).ext",
// "stem (2).ext", ... that is free. On success the move is recorded in log
// and the final path is returned. A failed rename leaves log untouched.
func (m *Mover) Move(oldPath, hint string, log Recorder) (string, error) {
	if oldPath == hint {
		return hint, nil
	}

	candidate, err := m.reserve(hint)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMove, "failed to pick a name for %s", oldPath).
			WithDetail("old", oldPath).
			WithDetail("new", hint)
	}
	defer m.release(candidate)

	if err := m.fs.Rename(oldPath, candidate); err != nil {
		m.logger.Error().Err(err).Str("from", oldPath).Str("to", candidate).Msg("Failed to move file")
		return "", errors.Wrapf(err, errors.ErrMove, "failed to move %s", oldPath).
			WithDetail("old", oldPath).
			WithDetail("new", candidate)
	}

	if log != nil {
		log.RecordMove(oldPath, candidate)
	}

	event := m.logger.Debug().Str("from", oldPath).Str("to", candidate)
	if candidate != hint {
		event = event.Str("hint", hint)
	}
	event.Msg("Moved file")

	return candidate, nil
}

// reserve returns the first candidate that is neither held by another
// in-flight move nor present on disk, and holds it. The reservation is taken
// before the existence check so no other move can rename into the candidate
// between the check and our own rename.
func (m *Mover) reserve(hint string) (string, error) {
	for n := 0; ; n++ {
		candidate := CandidateName(hint, n)

		m.mu.Lock()
		_, taken := m.reserved[candidate]
		if !taken {
			m.reserved[candidate] = struct{}{}
		}
		m.mu.Unlock()
		if taken {
			continue
		}

		_, err := m.fs.Lstat(candidate)
		if err == nil {
			m.release(candidate)
			continue
		}
		if !os.IsNotExist(err) {
			m.release(candidate)
			return "", err
		}
		return candidate, nil
	}
}

func (m *Mover) release(candidate string) {
	m.mu.Lock()
	delete(m.reserved, candidate)
	m.mu.Unlock()
}

// CandidateName returns the n-th destination tried for hint. n == 0 is hint
// itself.
func CandidateName(hint string, n int) string {
	if n == 0 {
		return hint
	}
	dir, base := filepath.Split(hint)
	stem, ext := SplitExtension(base)
	return dir + fmt.Sprintf("%s (%d)", stem, n) + ext
}

// SplitExtension splits a file name at its final dot. Names whose only dot is
// the leading one (".bashrc") and names ending in a dot have no extension;
// the returned ext includes the dot.
func SplitExtension(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	switch {
	case ext == name:
		return name, ""
	case ext == ".":
		return strings.TrimSuffix(name, "."), ""
	}
	return strings.TrimSuffix(name, ext), ext
}
