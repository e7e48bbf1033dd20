// pkg/sweeper/sweeper_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), testutil.MockFS for failures
// PURPOSE: Verify bottom-up removal of empty directories

package sweeper

import (
	"errors"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	sderrors "github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweep_RemovesNestedEmptyDirectories(t *testing.T) {
	env := testutil.NewEnvironment(t).WithTree(testutil.FileTree{
		"a/b/c/":      "",
		"a/d/":        "",
		"keep/x.txt":  "x",
		"keep/empty/": "",
	})
	log := changelog.New(env.Target)

	report := New(env.FS, logging.Nop()).Sweep(env.Target, log)
	require.NoError(t, report.Err())

	assert.Equal(t, []string{"keep/", "keep/x.txt"}, env.List())
	assert.Equal(t, []string{
		env.Path("keep/empty"),
		env.Path("a/d"),
		env.Path("a/b/c"),
		env.Path("a/b"),
		env.Path("a"),
	}, report.Removed)
	assert.Equal(t, report.Removed, log.RemovedDirectories())
}

func TestSweep_NeverRemovesRoot(t *testing.T) {
	env := testutil.NewEnvironment(t)

	report := New(env.FS, logging.Nop()).Sweep(env.Target, nil)

	assert.Empty(t, report.Removed)
	assert.True(t, testutil.DirExists(t, env.Target))
}

func TestSweep_ContinuesAfterFailure(t *testing.T) {
	env := testutil.NewEnvironment(t).WithTree(testutil.FileTree{
		"stuck/": "",
		"gone/":  "",
	})
	fs := testutil.NewMockFS(env.FS)
	fs.On("Remove", env.Path("stuck")).Return(errors.New("device busy"))
	fs.On("Remove", mock.Anything).Return(nil)
	log := changelog.New(env.Target)

	report := New(fs, logging.Nop()).Sweep(env.Target, log)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, string(sderrors.ErrDirRemove), report.Failures[0].Code)
	assert.Error(t, report.Err())
	assert.Equal(t, []string{env.Path("gone")}, report.Removed)
	assert.Equal(t, []string{env.Path("gone")}, log.RemovedDirectories())
	assert.True(t, testutil.DirExists(t, env.Path("stuck")))
}
