// Package sweeper removes the directories an organize or restore run left
// empty.
package sweeper

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Recorder receives removed directories.
type Recorder interface {
	RecordRemovedDirectory(path string) bool
}

// Report lists what a sweep removed and what it could not.
type Report struct {
	Removed  []string
	Failures []types.Failure

	errs *multierror.Error
}

// Err returns every removal failure combined, or nil.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}

// Sweeper removes empty directories bottom-up.
type Sweeper struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Sweeper.
func New(fs types.FS, logger zerolog.Logger) *Sweeper {
	return &Sweeper{fs: fs, logger: logger}
}

// Sweep removes every empty directory strictly below directory, deepest
// first, so a parent holding only empty children goes too. Each removal is
// recorded in log. directory itself is never removed.
func (s *Sweeper) Sweep(directory string, log Recorder) *Report {
	report := &Report{}

	var dirs []string
	err := s.fs.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry during sweep")
			return nil
		}
		if info.IsDir() && path != directory {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("directory", directory).Msg("Sweep walk stopped early")
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				s.logger.Warn().Err(err).Str("directory", dir).Msg("Cannot read directory, leaving it")
			}
			continue
		}
		if len(entries) > 0 {
			continue
		}

		if err := s.fs.Remove(dir); err != nil {
			wrapped := errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", filepath.Clean(dir)).
				WithDetail("directory", dir)
			s.logger.Error().Err(err).Str("directory", dir).Msg("Failed to remove empty directory")
			report.errs = multierror.Append(report.errs, wrapped)
			report.Failures = append(report.Failures, types.Failure{
				Path:  dir,
				Code:  string(errors.ErrDirRemove),
				Error: wrapped.Error(),
			})
			continue
		}

		if log != nil {
			log.RecordRemovedDirectory(dir)
		}
		report.Removed = append(report.Removed, dir)
		s.logger.Info().Str("directory", dir).Msg("Removed empty directory")
	}

	return report
}
