// Package lock serializes organize and restore runs on one directory tree.
//
// The lock file lives in sortdir's state directory, never inside the tree,
// so that it can neither be organized nor show up in a change log.
package lock

import (
	"os"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// TreeLock is an exclusive advisory lock on one base directory.
type TreeLock struct {
	baseDirectory string
	path          string
	flock         *flock.Flock
	logger        zerolog.Logger
}

// Locker knows where lock files for a base directory go.
type Locker interface {
	LockDir() string
	LockPath(baseDirectory string) string
}

// Acquire takes the lock for baseDirectory without blocking. A lock held by
// another run yields LOCKED.
func Acquire(locker Locker, baseDirectory string, logger zerolog.Logger) (*TreeLock, error) {
	if err := os.MkdirAll(locker.LockDir(), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create lock directory %s", locker.LockDir())
	}

	path := locker.LockPath(baseDirectory)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to acquire lock %s", path)
	}
	if !ok {
		return nil, errors.Newf(errors.ErrLocked, "another sortdir run is working on %s", baseDirectory).
			WithDetail("lockFile", path)
	}

	logger.Debug().Str("directory", baseDirectory).Str("lock", path).Msg("Acquired tree lock")

	return &TreeLock{
		baseDirectory: baseDirectory,
		path:          path,
		flock:         fl,
		logger:        logger,
	}, nil
}

// Path returns the lock file location.
func (l *TreeLock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call more than once.
func (l *TreeLock) Release() {
	if l == nil || !l.flock.Locked() {
		return
	}
	if err := l.flock.Unlock(); err != nil {
		l.logger.Warn().Err(err).Str("lock", l.path).Msg("Failed to release tree lock")
		return
	}
	l.logger.Debug().Str("directory", l.baseDirectory).Msg("Released tree lock")
}
