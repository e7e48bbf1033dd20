// Package organize runs a complete organize pass over one directory: it
// checks the target, takes the tree lock, resumes from an existing change
// log, moves files into their buckets, sweeps empty directories and
// persists the change log.
package organize

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	"github.com/arthur-debert/sortdir/pkg/commands/internal"
	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/lock"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/organizer"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/sweeper"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrganizeOptions contains options for the organize command
type OrganizeOptions struct {
	// Directory is the tree to organize. It is canonicalized before use.
	Directory string

	// Workers bounds concurrent moves; zero means runtime.NumCPU()
	Workers int

	// NoExtensionDir names the bucket for files without an extension
	NoExtensionDir string

	// LowercaseExtensions folds extensions to lower case before bucketing
	LowercaseExtensions bool

	// StrictLog rejects a malformed existing change log instead of
	// reading it leniently
	StrictLog bool

	// Paths provides the lock and orphan directories (defaults to paths.New)
	Paths paths.Paths

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Organize moves every file below opts.Directory into a bucket named after
// its extension and writes the change log that restore replays.
//
// Fatal preconditions are reported before anything on disk changes. When
// ctx is cancelled part way, the partial run is still swept and persisted,
// so it stays restorable; the result is returned together with ctx.Err().
// If the change log cannot be written into the directory it is saved to
// the orphan directory and the returned error names that file.
func Organize(ctx context.Context, opts OrganizeOptions) (*types.OrganizeResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := logging.WithRun(logging.GetLogger("commands.organize"), runID)

	fs, p, err := internal.Defaults(opts.FileSystem, opts.Paths)
	if err != nil {
		return nil, err
	}

	base, err := internal.ResolveDirectory(fs, opts.Directory)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("directory", opts.Directory).
		Str("resolved", base).
		Msg("Starting organize command")

	treeLock, err := lock.Acquire(p, base, logger)
	if err != nil {
		return nil, err
	}
	defer treeLock.Release()

	log, resumed, err := loadOrCreate(fs, base, changelog.ParseOptions{Strict: opts.StrictLog})
	if err != nil {
		return nil, err
	}
	if resumed {
		logger.Info().
			Str("logFile", changelog.PathFor(base)).
			Int("buckets", len(log.CreatedDirectories())).
			Msg("Resumed from existing change log")
	}
	priorMoves := len(log.Moves())

	org := organizer.New(organizer.Options{
		FS:                  fs,
		Logger:              logging.Component(logger, "organizer"),
		Workers:             opts.Workers,
		NoExtensionDir:      opts.NoExtensionDir,
		LowercaseExtensions: opts.LowercaseExtensions,
	})

	report, runErr := org.Organize(ctx, base, log)
	if report == nil {
		return nil, runErr
	}

	sweep := sweeper.New(fs, logging.Component(logger, "sweeper")).Sweep(base, log)

	result := &types.OrganizeResult{
		RunID:              runID,
		BaseDirectory:      base,
		Resumed:            resumed,
		Interrupted:        runErr != nil,
		Attempted:          report.Attempted,
		Moved:              report.Moved,
		Skipped:            report.Skipped,
		CreatedDirectories: log.CreatedDirectories(),
		RemovedDirectories: sweep.Removed,
		Moves:              log.Moves()[priorMoves:],
		Failures:           append(report.Failures, sweep.Failures...),
	}

	logFile, err := changelog.Save(fs, log)
	if err != nil {
		logger.Error().Err(err).Str("directory", base).Msg("Failed to write change log into the directory")
		result.OrphanedLog = saveOrphan(fs, p, runID, log, logger)
		result.Duration = time.Since(start)
		if result.OrphanedLog != "" {
			return result, errors.Wrapf(err, errors.ErrLogPersist,
				"change log saved to %s instead, restore with it", result.OrphanedLog).
				WithDetail("orphanedLog", result.OrphanedLog)
		}
		return result, err
	}
	result.LogFile = logFile
	result.Duration = time.Since(start)

	logger.Info().
		Int("moved", result.Moved).
		Int("failures", len(result.Failures)).
		Str("logFile", logFile).
		Dur("duration", result.Duration).
		Msg("Organize finished")

	return result, runErr
}

func loadOrCreate(fs types.FS, base string, opts changelog.ParseOptions) (*changelog.ChangeLog, bool, error) {
	exists, err := changelog.Exists(fs, base)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return changelog.New(base), false, nil
	}

	log, err := changelog.Load(fs, changelog.PathFor(base), opts)
	if err != nil {
		return nil, false, err
	}
	return log, true, nil
}

// saveOrphan writes log under the orphan directory and returns where it
// went, or "" when that failed too.
func saveOrphan(fs types.FS, p paths.Paths, runID string, log *changelog.ChangeLog, logger zerolog.Logger) string {
	dir := p.OrphanDir()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		logger.Error().Err(err).Str("directory", dir).Msg("Failed to create orphan directory, change log is lost")
		return ""
	}

	path := filepath.Join(dir, runID+".log")
	if err := changelog.SaveTo(fs, log, path); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("Failed to write orphaned change log, change log is lost")
		return ""
	}

	logger.Warn().Str("file", path).Msg("Saved orphaned change log")
	return path
}
