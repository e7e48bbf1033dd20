// pkg/commands/status/status_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Real filesystem (testutil.Environment), organize command
// PURPOSE: Test the read-only status report of a directory

package status_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/commands/organize"
	"github.com/arthur-debert/sortdir/pkg/commands/status"
	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_NoChangeLog(t *testing.T) {
	env := testutil.NewEnvironment(t).WithTree(testutil.FileTree{"a.txt": "a"})

	result, err := status.Status(status.StatusOptions{Directory: env.Target})
	require.NoError(t, err)

	assert.False(t, result.HasLog)
	assert.Equal(t, env.Target, result.Directory)
	assert.Equal(t, env.LogFile(), result.LogFile)
	assert.Equal(t, 0, result.Moves)
}

func TestStatus_AfterOrganize(t *testing.T) {
	env := testutil.NewEnvironment(t).WithTree(testutil.FileTree{
		"a.txt":     "a",
		"b.txt":     "b",
		"sub/c.md":  "c",
		"sub/d.bin": "d",
	})
	_, err := organize.Organize(context.Background(), organize.OrganizeOptions{
		Directory:  env.Target,
		Paths:      env.Paths,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	require.NoError(t, env.FS.Remove(env.Path("txt/b.txt")))
	before := env.Snapshot()

	result, err := status.Status(status.StatusOptions{Directory: env.Target})
	require.NoError(t, err)

	assert.True(t, result.HasLog)
	assert.Equal(t, 4, result.Moves)
	assert.Equal(t, 3, result.Restorable)
	assert.Equal(t, 1, result.RemovedDirectories)
	assert.ElementsMatch(t, []string{env.Path("txt"), env.Path("md"), env.Path("bin")}, result.CreatedDirectories)
	require.Len(t, result.Stale, 1)
	assert.Equal(t, env.Path("b.txt"), result.Stale[0].OldPath)

	assert.Equal(t, before, env.Snapshot(), "status must not change the tree")
}

func TestStatus_InvalidTarget(t *testing.T) {
	env := testutil.NewEnvironment(t).WithTree(testutil.FileTree{"a.txt": "a"})

	_, err := status.Status(status.StatusOptions{Directory: env.Path("a.txt")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTarget))
}

func TestStatus_CorruptLog(t *testing.T) {
	env := testutil.NewEnvironment(t)
	testutil.CreateDir(t, env.Target, ".sortdir_log")

	_, err := status.Status(status.StatusOptions{Directory: env.Target})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCorruptLog))
}
