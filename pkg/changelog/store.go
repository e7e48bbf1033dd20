package changelog

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/types"
)

// PathFor returns where the change log of directory is persisted.
func PathFor(directory string) string {
	return paths.LogFilePath(directory)
}

// Exists reports whether directory carries a persisted change log.
func Exists(fs types.FS, directory string) (bool, error) {
	info, err := fs.Lstat(PathFor(directory))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrLogRead, "failed to stat change log in %s", directory)
	}
	if !info.Mode().IsRegular() {
		return false, errors.Newf(errors.ErrCorruptLog, "change log %s is not a regular file", PathFor(directory))
	}
	return true, nil
}

// Load reads and parses the change log at path.
func Load(fs types.FS, path string, opts ParseOptions) (*ChangeLog, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "change log not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrLogRead, "failed to open change log %s", path)
	}
	defer f.Close()

	log, err := Parse(f, opts)
	if err != nil {
		if sortdirErr, ok := err.(*errors.SortdirError); ok {
			return nil, sortdirErr.WithDetail("file", path)
		}
		return nil, err
	}
	return log, nil
}

// Save persists log into its base directory. The text is written to a
// temporary sibling first and renamed over the final name, so a crash never
// leaves a truncated log behind.
func Save(fs types.FS, log *ChangeLog) (string, error) {
	target := PathFor(log.BaseDirectory())
	tmp := target + paths.TempSuffix

	if err := writeFile(fs, tmp, log); err != nil {
		_ = fs.Remove(tmp)
		return "", errors.Wrapf(err, errors.ErrLogPersist, "failed to write change log %s", tmp)
	}
	if err := fs.Rename(tmp, target); err != nil {
		_ = fs.Remove(tmp)
		return "", errors.Wrapf(err, errors.ErrLogPersist, "failed to move change log into place at %s", target)
	}
	return target, nil
}

// SaveTo writes log to an arbitrary path, used when the base directory
// cannot take it.
func SaveTo(fs types.FS, log *ChangeLog, path string) error {
	if err := writeFile(fs, path, log); err != nil {
		return errors.Wrapf(err, errors.ErrLogPersist, "failed to write change log %s", path)
	}
	return nil
}

// Remove deletes a persisted change log.
func Remove(fs types.FS, path string) error {
	if err := fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrLogPersist, "failed to remove change log %s", path)
	}
	return nil
}

func writeFile(fs types.FS, path string, log *ChangeLog) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close: %w", closeErr)
		}
	}()

	_, err = log.WriteTo(f)
	return err
}
