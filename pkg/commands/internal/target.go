// Package internal holds the precondition checks shared by the commands.
package internal

import (
	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/filesystem"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/types"
)

// Defaults fills in the filesystem and application paths a command runs
// against when the caller left them empty.
func Defaults(fs types.FS, p paths.Paths) (types.FS, paths.Paths, error) {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if p == nil {
		var err error
		if p, err = paths.New(); err != nil {
			return nil, nil, err
		}
	}
	return fs, p, nil
}

// ResolveDirectory canonicalizes path and checks that it names a directory.
func ResolveDirectory(fs types.FS, path string) (string, error) {
	resolved, err := paths.Canonicalize(path)
	if err != nil {
		return "", err
	}

	info, err := fs.Stat(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidTarget, "cannot access %s", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidTarget, "%s is not a directory", path).
			WithDetail("path", path)
	}
	return resolved, nil
}

// ResolveLogFile canonicalizes path and checks that it names a regular file.
func ResolveLogFile(fs types.FS, path string) (string, error) {
	resolved, err := paths.Canonicalize(path)
	if err != nil {
		return "", err
	}

	info, err := fs.Stat(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidTarget, "cannot access %s", path).
			WithDetail("path", path)
	}
	if !info.Mode().IsRegular() {
		return "", errors.Newf(errors.ErrInvalidTarget, "%s is not a change log file", path).
			WithDetail("path", path)
	}
	return resolved, nil
}
