// pkg/lock/lock_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Verify a tree can only be locked by one run at a time

package lock

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLocker struct {
	dir string
}

func (l testLocker) LockDir() string { return l.dir }

func (l testLocker) LockPath(base string) string {
	return filepath.Join(l.dir, filepath.Base(base)+".lock")
}

func TestAcquire_Exclusive(t *testing.T) {
	locker := testLocker{dir: filepath.Join(t.TempDir(), "locks")}

	first, err := Acquire(locker, "/data/photos", logging.Nop())
	require.NoError(t, err)
	defer first.Release()
	assert.FileExists(t, first.Path())

	_, err = Acquire(locker, "/data/photos", logging.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))
	assert.Equal(t, first.Path(), errors.GetErrorDetails(err)["lockFile"])

	other, err := Acquire(locker, "/data/music", logging.Nop())
	require.NoError(t, err, "different trees must not contend")
	other.Release()
}

func TestRelease_AllowsReacquire(t *testing.T) {
	locker := testLocker{dir: t.TempDir()}

	first, err := Acquire(locker, "/data/photos", logging.Nop())
	require.NoError(t, err)
	first.Release()
	first.Release()

	second, err := Acquire(locker, "/data/photos", logging.Nop())
	require.NoError(t, err)
	second.Release()
}

func TestRelease_Nil(t *testing.T) {
	var l *TreeLock
	assert.NotPanics(t, l.Release)
}
