// Package restorer replays a change log backwards to rebuild the layout a
// directory had before it was organized.
package restorer

import (
	"path/filepath"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/mover"
	"github.com/arthur-debert/sortdir/pkg/organizer"
	"github.com/arthur-debert/sortdir/pkg/sweeper"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Options configures a Restorer. Mover and Sweeper default to ones built
// over FS.
type Options struct {
	FS           types.FS
	Logger       zerolog.Logger
	Mover        *mover.Mover
	Sweeper      *sweeper.Sweeper
	ParseOptions changelog.ParseOptions
}

// Report summarizes one restore.
type Report struct {
	BaseDirectory        string
	RecreatedDirectories int
	Restored             int
	// Renamed counts restored files that had to take a suffixed name
	// because their original path was occupied.
	Renamed            int
	Missing            int
	RemovedDirectories []string
	LogRemoved         bool
	Failures           []types.Failure

	errs *multierror.Error
}

// Err returns every per-item failure combined, or nil.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}

func (r *Report) fail(path string, err error) {
	r.errs = multierror.Append(r.errs, err)
	r.Failures = append(r.Failures, organizer.NewFailure(path, err))
}

// Restorer undoes organize runs.
type Restorer struct {
	fs           types.FS
	logger       zerolog.Logger
	mover        *mover.Mover
	sweeper      *sweeper.Sweeper
	parseOptions changelog.ParseOptions
}

// New creates a Restorer.
func New(opts Options) *Restorer {
	r := &Restorer{
		fs:           opts.FS,
		logger:       opts.Logger,
		mover:        opts.Mover,
		sweeper:      opts.Sweeper,
		parseOptions: opts.ParseOptions,
	}
	if r.mover == nil {
		r.mover = mover.New(r.fs, r.logger)
	}
	if r.sweeper == nil {
		r.sweeper = sweeper.New(r.fs, r.logger)
	}
	return r
}

// Restore loads logFile and replays it. Load and validation errors are
// returned before anything on disk changes.
func (r *Restorer) Restore(logFile string) (*Report, error) {
	log, err := changelog.Load(r.fs, logFile, r.parseOptions)
	if err != nil {
		return nil, err
	}
	return r.RestoreLog(logFile, log)
}

// RestoreLog replays an already loaded change log and deletes logFile when
// done:
//
//  1. recreate the directories the organize run removed
//  2. move every file back, newest move first
//  3. sweep the directories left empty
//  4. delete the change log
//
// Failures in steps 1 to 4 are reported and skipped.
func (r *Restorer) RestoreLog(logFile string, log *changelog.ChangeLog) (*Report, error) {
	base := log.BaseDirectory()
	if err := r.validate(base); err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(r.logger, "restore")
	defer done()

	report := &Report{BaseDirectory: base}

	r.recreateDirectories(log, report)
	r.replayMoves(log, report)

	sweep := r.sweeper.Sweep(base, changelog.New(base))
	report.RemovedDirectories = sweep.Removed
	report.Failures = append(report.Failures, sweep.Failures...)
	if err := sweep.Err(); err != nil {
		report.errs = multierror.Append(report.errs, err)
	}

	if err := changelog.Remove(r.fs, logFile); err != nil {
		r.logger.Error().Err(err).Str("file", logFile).Msg("Failed to remove change log")
		report.fail(logFile, err)
	} else {
		report.LogRemoved = true
		r.logger.Info().Str("file", logFile).Msg("Removed change log")
	}

	r.logger.Info().
		Int("restored", report.Restored).
		Int("missing", report.Missing).
		Int("failures", len(report.Failures)).
		Msg("Restore finished")
	return report, nil
}

func (r *Restorer) validate(base string) error {
	info, err := r.fs.Stat(base)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidTarget, "base directory %s is not accessible", base).
			WithDetail("directory", base)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidTarget, "base directory %s is not a directory", base).
			WithDetail("directory", base)
	}
	return nil
}

func (r *Restorer) recreateDirectories(log *changelog.ChangeLog, report *Report) {
	removed := log.RemovedDirectories()
	if len(removed) == 0 {
		r.logger.Debug().Msg("No directories to recreate")
		return
	}
	for _, dir := range removed {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			r.logger.Error().Err(err).Str("directory", dir).Msg("Failed to recreate directory")
			report.fail(dir, errors.Wrapf(err, errors.ErrDirCreate, "failed to recreate %s", dir))
			continue
		}
		report.RecreatedDirectories++
		r.logger.Debug().Str("directory", dir).Msg("Recreated directory")
	}
}

func (r *Restorer) replayMoves(log *changelog.ChangeLog, report *Report) {
	scratch := changelog.New(log.BaseDirectory())
	moves := log.Moves()

	for i := len(moves) - 1; i >= 0; i-- {
		back := moves[i].Reversed()

		if _, err := r.fs.Lstat(back.OldPath); err != nil {
			r.logger.Error().Err(err).Str("path", back.OldPath).Msg("Organized file is gone, cannot restore it")
			report.Missing++
			report.fail(back.OldPath, errors.Wrapf(err, errors.ErrNotFound, "path does not exist: %s", back.OldPath))
			continue
		}

		parent := filepath.Dir(back.NewPath)
		if err := r.fs.MkdirAll(parent, 0755); err != nil {
			r.logger.Error().Err(err).Str("directory", parent).Msg("Failed to create parent directory")
			report.fail(back.OldPath, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent))
			continue
		}

		got, err := r.mover.Move(back.OldPath, back.NewPath, scratch)
		if err != nil {
			report.fail(back.OldPath, err)
			continue
		}
		report.Restored++
		if got != back.NewPath {
			report.Renamed++
			r.logger.Warn().Str("original", back.NewPath).Str("restoredAs", got).Msg("Original path was taken, restored under a new name")
		}
	}
}
