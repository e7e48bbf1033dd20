// pkg/mover/mover_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), testutil.MockFS for failures
// PURPOSE: Verify collision-free naming, including concurrent movers
// targeting the same destination

package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	sderrors "github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/filesystem"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/testutil"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"a.txt", "a", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
		{".config.toml", ".config", ".toml"},
		{"trailing.", "trailing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitExtension(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestCandidateName(t *testing.T) {
	assert.Equal(t, "/d/txt/a.txt", CandidateName("/d/txt/a.txt", 0))
	assert.Equal(t, "/d/txt/a (1).txt", CandidateName("/d/txt/a.txt", 1))
	assert.Equal(t, "/d/txt/a (12).txt", CandidateName("/d/txt/a.txt", 12))
	assert.Equal(t, "/d/no_extension/c (1)", CandidateName("/d/no_extension/c", 1))
	assert.Equal(t, "/d/no_extension/.bashrc (2)", CandidateName("/d/no_extension/.bashrc", 2))
}

func TestMove_NoCollision(t *testing.T) {
	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "a.txt", "a")
	testutil.CreateDir(t, dir, "txt")
	log := changelog.New(dir)

	got, err := New(filesystem.NewOS(), logging.Nop()).Move(src, filepath.Join(dir, "txt", "a.txt"), log)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "txt", "a.txt"), got)
	testutil.AssertNoFile(t, src)
	testutil.AssertFileContent(t, got, "a")
	assert.Equal(t, []types.MoveRecord{{OldPath: src, NewPath: got}}, log.Moves())
}

func TestMove_Collisions(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateTree(t, dir, testutil.FileTree{
		"txt/a.txt":      "existing",
		"txt/a (1).txt":  "existing too",
		"src/a.txt":      "new",
		"no_extension/c": "existing",
		"src/c":          "new c",
	})
	m := New(filesystem.NewOS(), logging.Nop())
	log := changelog.New(dir)

	got, err := m.Move(filepath.Join(dir, "src", "a.txt"), filepath.Join(dir, "txt", "a.txt"), log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "txt", "a (2).txt"), got)
	testutil.AssertFileContent(t, got, "new")
	testutil.AssertFileContent(t, filepath.Join(dir, "txt", "a.txt"), "existing")

	got, err = m.Move(filepath.Join(dir, "src", "c"), filepath.Join(dir, "no_extension", "c"), log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "no_extension", "c (1)"), got)

	assert.Len(t, log.Moves(), 2)
}

func TestMove_DanglingSymlinkOccupiesName(t *testing.T) {
	testutil.SkipOnWindows(t)

	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "src/a.txt", "a")
	testutil.CreateSymlink(t, filepath.Join(dir, "missing"), filepath.Join(dir, "txt", "a.txt"))

	got, err := New(filesystem.NewOS(), logging.Nop()).Move(src, filepath.Join(dir, "txt", "a.txt"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "txt", "a (1).txt"), got)
}

func TestMove_OntoItselfIsNoop(t *testing.T) {
	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "txt/a.txt", "a")
	log := changelog.New(dir)

	got, err := New(filesystem.NewOS(), logging.Nop()).Move(src, src, log)
	require.NoError(t, err)

	assert.Equal(t, src, got)
	testutil.AssertFileContent(t, src, "a")
	assert.Empty(t, log.Moves())
}

func TestMove_ConcurrentSameHint(t *testing.T) {
	const n = 32

	dir := t.TempDir()
	sources := make([]string, n)
	for i := range sources {
		sources[i] = testutil.CreateFile(t, dir, fmt.Sprintf("src%d/report.txt", i), fmt.Sprintf("content %d", i))
	}
	testutil.CreateDir(t, dir, "txt")

	m := New(filesystem.NewOS(), logging.Nop())
	log := changelog.New(dir)
	hint := filepath.Join(dir, "txt", "report.txt")

	results := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = m.Move(sources[i], hint, log)
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i, got := range results {
		require.NoError(t, errs[i])
		assert.False(t, seen[got], "two moves landed on %s", got)
		seen[got] = true
		testutil.AssertFileContent(t, got, fmt.Sprintf("content %d", i))
	}

	assert.Len(t, log.Moves(), n)
	entries, err := filesystem.NewOS().ReadDir(filepath.Join(dir, "txt"))
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

// stallingFS holds the first Lstat of target until resume is closed, after
// the real Lstat has already answered.
type stallingFS struct {
	types.FS
	target  string
	stalled atomic.Bool
	checked chan struct{}
	resume  chan struct{}
}

func (f *stallingFS) Lstat(name string) (fs.FileInfo, error) {
	info, err := f.FS.Lstat(name)
	if name == f.target && f.stalled.CompareAndSwap(false, true) {
		close(f.checked)
		<-f.resume
	}
	return info, err
}

func TestMove_NameCheckedWhileReserved(t *testing.T) {
	dir := t.TempDir()
	first := testutil.CreateFile(t, dir, "a/report.txt", "first")
	second := testutil.CreateFile(t, dir, "b/report.txt", "second")
	testutil.CreateDir(t, dir, "txt")
	hint := filepath.Join(dir, "txt", "report.txt")

	stall := &stallingFS{
		FS:      filesystem.NewOS(),
		target:  hint,
		checked: make(chan struct{}),
		resume:  make(chan struct{}),
	}
	m := New(stall, logging.Nop())
	log := changelog.New(dir)

	type outcome struct {
		path string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		got, err := m.Move(first, hint, log)
		done <- outcome{got, err}
	}()

	// The first move has seen hint as free and is parked before renaming.
	<-stall.checked
	gotSecond, err := m.Move(second, hint, log)
	require.NoError(t, err)
	close(stall.resume)
	res := <-done
	require.NoError(t, res.err)

	assert.Equal(t, hint, res.path)
	assert.Equal(t, filepath.Join(dir, "txt", "report (1).txt"), gotSecond)
	testutil.AssertFileContent(t, res.path, "first")
	testutil.AssertFileContent(t, gotSecond, "second")

	entries, err := filesystem.NewOS().ReadDir(filepath.Join(dir, "txt"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Len(t, log.Moves(), 2)
}

func TestMove_RenameFailure(t *testing.T) {
	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "a.txt", "a")
	testutil.CreateDir(t, dir, "txt")

	fs := testutil.NewMockFS(filesystem.NewOS())
	fs.On("Rename", src, mock.Anything).Return(errors.New("device busy"))
	log := changelog.New(dir)

	_, err := New(fs, logging.Nop()).Move(src, filepath.Join(dir, "txt", "a.txt"), log)
	require.Error(t, err)

	assert.True(t, sderrors.IsErrorCode(err, sderrors.ErrMove))
	details := sderrors.GetErrorDetails(err)
	assert.Equal(t, src, details["old"])
	assert.Equal(t, filepath.Join(dir, "txt", "a.txt"), details["new"])
	assert.Empty(t, log.Moves())
	testutil.AssertFileContent(t, src, "a")
}

func TestMove_ReleasesReservationAfterFailure(t *testing.T) {
	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "a.txt", "a")
	testutil.CreateDir(t, dir, "txt")
	hint := filepath.Join(dir, "txt", "a.txt")

	fs := testutil.NewMockFS(filesystem.NewOS())
	fs.On("Rename", src, hint).Return(errors.New("transient")).Once()
	fs.On("Rename", src, hint).Return(nil)
	m := New(fs, logging.Nop())

	_, err := m.Move(src, hint, nil)
	require.Error(t, err)

	got, err := m.Move(src, hint, nil)
	require.NoError(t, err)
	assert.Equal(t, hint, got, "a failed move must not keep its name reserved")
}
