package changelog

import (
	"sync"

	"github.com/arthur-debert/sortdir/pkg/types"
)

// ChangeLog records the structural changes of one run: directories created,
// directories removed and files moved. All Record methods are safe for
// concurrent use.
type ChangeLog struct {
	baseDirectory string

	mu      sync.Mutex
	created orderedSet
	removed orderedSet
	moves   []types.MoveRecord
}

// New returns an empty change log for baseDirectory.
func New(baseDirectory string) *ChangeLog {
	return &ChangeLog{
		baseDirectory: baseDirectory,
		created:       newOrderedSet(),
		removed:       newOrderedSet(),
	}
}

// BaseDirectory returns the directory the log describes.
func (l *ChangeLog) BaseDirectory() string {
	return l.baseDirectory
}

// RecordCreatedDirectory adds path to the created set and reports whether it
// was new.
func (l *ChangeLog) RecordCreatedDirectory(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created.add(path)
}

// RecordRemovedDirectory adds path to the removed set and reports whether it
// was new.
func (l *ChangeLog) RecordRemovedDirectory(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removed.add(path)
}

// RecordMove appends a completed rename. Duplicates are kept.
func (l *ChangeLog) RecordMove(oldPath, newPath string) {
	l.mu.Lock()
	l.moves = append(l.moves, types.MoveRecord{OldPath: oldPath, NewPath: newPath})
	l.mu.Unlock()
}

// CreatedDirectories returns a copy of the created set in first-seen order.
func (l *ChangeLog) CreatedDirectories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created.list()
}

// RemovedDirectories returns a copy of the removed set in first-seen order.
func (l *ChangeLog) RemovedDirectories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removed.list()
}

// Moves returns a copy of the move records in completion order.
func (l *ChangeLog) Moves() []types.MoveRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.MoveRecord, len(l.moves))
	copy(out, l.moves)
	return out
}

// Summary holds the sizes of each section of a change log.
type Summary struct {
	Created int `json:"created"`
	Removed int `json:"removed"`
	Moves   int `json:"moves"`
}

// Summary returns the section sizes.
func (l *ChangeLog) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Summary{
		Created: len(l.created.items),
		Removed: len(l.removed.items),
		Moves:   len(l.moves),
	}
}

// orderedSet keeps first-seen order and rejects duplicates.
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func newOrderedSet() orderedSet {
	return orderedSet{index: make(map[string]struct{})}
}

func (s *orderedSet) add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet) list() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
