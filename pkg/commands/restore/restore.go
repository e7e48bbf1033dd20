// Package restore undoes an organize run from its change log.
package restore

import (
	"time"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	"github.com/arthur-debert/sortdir/pkg/commands/internal"
	"github.com/arthur-debert/sortdir/pkg/lock"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/restorer"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/google/uuid"
)

// RestoreOptions contains options for the restore command
type RestoreOptions struct {
	// LogFile is the change log to replay. Usually <dir>/.sortdir_log, but
	// an orphaned log from the state directory works the same way.
	LogFile string

	// StrictLog rejects malformed records instead of reading leniently
	StrictLog bool

	// Paths provides the lock directory (defaults to paths.New)
	Paths paths.Paths

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Restore moves every file recorded in opts.LogFile back to where it was,
// recreates the directories organize removed and deletes the change log.
// The log is read and its base directory locked before anything moves.
func Restore(opts RestoreOptions) (*types.RestoreResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := logging.WithRun(logging.GetLogger("commands.restore"), runID)

	fs, p, err := internal.Defaults(opts.FileSystem, opts.Paths)
	if err != nil {
		return nil, err
	}

	logFile, err := internal.ResolveLogFile(fs, opts.LogFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("logFile", opts.LogFile).
		Str("resolved", logFile).
		Msg("Starting restore command")

	log, err := changelog.Load(fs, logFile, changelog.ParseOptions{Strict: opts.StrictLog})
	if err != nil {
		return nil, err
	}
	summary := log.Summary()
	logger.Info().
		Str("base", log.BaseDirectory()).
		Int("moves", summary.Moves).
		Int("removedDirectories", summary.Removed).
		Msg("Loaded change log")

	treeLock, err := lock.Acquire(p, log.BaseDirectory(), logger)
	if err != nil {
		return nil, err
	}
	defer treeLock.Release()

	r := restorer.New(restorer.Options{
		FS:     fs,
		Logger: logging.Component(logger, "restorer"),
	})
	report, err := r.RestoreLog(logFile, log)
	if err != nil {
		return nil, err
	}

	result := &types.RestoreResult{
		RunID:                runID,
		BaseDirectory:        report.BaseDirectory,
		LogFile:              logFile,
		RecreatedDirectories: report.RecreatedDirectories,
		Restored:             report.Restored,
		Renamed:              report.Renamed,
		Missing:              report.Missing,
		RemovedDirectories:   report.RemovedDirectories,
		LogRemoved:           report.LogRemoved,
		Failures:             report.Failures,
		Duration:             time.Since(start),
	}

	logger.Info().
		Int("restored", result.Restored).
		Int("failures", len(result.Failures)).
		Dur("duration", result.Duration).
		Msg("Restore finished")

	return result, nil
}
