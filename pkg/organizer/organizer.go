// Package organizer moves every file of a directory tree into a
// subdirectory named after its extension.
package organizer

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/sortdir/pkg/changelog"
	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/mover"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options configures an Organizer.
type Options struct {
	FS     types.FS
	Logger zerolog.Logger
	// Mover defaults to one built over FS.
	Mover *mover.Mover
	// Workers bounds concurrent moves; zero or less means runtime.NumCPU().
	Workers int
	// NoExtensionDir is the bucket for files without an extension.
	NoExtensionDir string
	// LowercaseExtensions folds "JPG" and "jpg" into one bucket.
	LowercaseExtensions bool
}

// Organizer classifies files by extension and moves them into buckets.
type Organizer struct {
	fs                  types.FS
	logger              zerolog.Logger
	mover               *mover.Mover
	workers             int
	noExtensionDir      string
	lowercaseExtensions bool
}

// New creates an Organizer, filling in defaults.
func New(opts Options) *Organizer {
	o := &Organizer{
		fs:                  opts.FS,
		logger:              opts.Logger,
		mover:               opts.Mover,
		workers:             opts.Workers,
		noExtensionDir:      opts.NoExtensionDir,
		lowercaseExtensions: opts.LowercaseExtensions,
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	if o.noExtensionDir == "" {
		o.noExtensionDir = paths.DefaultNoExtensionDir
	}
	if o.mover == nil {
		o.mover = mover.New(o.fs, o.logger)
	}
	return o
}

// Workers returns the effective pool size.
func (o *Organizer) Workers() int {
	return o.workers
}

// BucketFor returns the bucket name for a file name: its extension without
// the dot, or the no-extension bucket.
func (o *Organizer) BucketFor(name string) string {
	_, ext := mover.SplitExtension(name)
	if ext == "" {
		return o.noExtensionDir
	}
	key := strings.TrimPrefix(ext, ".")
	if o.lowercaseExtensions {
		key = strings.ToLower(key)
	}
	return key
}

// Organize moves every regular file below directory into directory/<bucket>,
// recording each created bucket and each completed move in log. Directories
// log already lists as created are not descended into.
//
// Per-file failures land in the report and never stop the batch. When ctx
// is cancelled no further files are dispatched; moves already running
// finish and the partial report is returned together with ctx.Err().
func (o *Organizer) Organize(ctx context.Context, directory string, log *changelog.ChangeLog) (*Report, error) {
	if log.BaseDirectory() != directory {
		return nil, errors.Newf(errors.ErrInvalidTarget,
			"change log belongs to %s, not %s", log.BaseDirectory(), directory).
			WithDetail("logBase", log.BaseDirectory()).
			WithDetail("directory", directory)
	}

	done := logging.LogOperationStart(o.logger, "organize")
	defer done()

	files, err := o.collect(directory, log.CreatedDirectories())
	if err != nil {
		return nil, err
	}

	report := &Report{Attempted: len(files)}
	o.logger.Info().
		Str("directory", directory).
		Int("files", len(files)).
		Int("workers", o.workers).
		Msg("Organizing files")

	g := new(errgroup.Group)
	g.SetLimit(o.workers)
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			o.organizeFile(directory, path, log, report)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		o.logger.Warn().
			Int("moved", report.Moved).
			Int("attempted", report.Attempted).
			Msg("Organize interrupted, stopped dispatching files")
		return report, err
	}
	return report, nil
}

func (o *Organizer) organizeFile(directory, path string, log *changelog.ChangeLog, report *Report) {
	name := filepath.Base(path)
	target := filepath.Join(directory, o.BucketFor(name))

	if err := o.fs.MkdirAll(target, 0755); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", target).
			WithDetail("directory", target)
		o.logger.Error().Err(err).Str("directory", target).Str("file", path).Msg("Failed to create bucket directory")
		report.fail(path, wrapped)
		return
	}
	if log.RecordCreatedDirectory(target) {
		o.logger.Debug().Str("directory", target).Msg("Bucket ready")
	}

	if filepath.Dir(path) == target {
		o.logger.Trace().Str("file", path).Msg("Already in its bucket")
		report.skipped()
		return
	}

	if _, err := o.mover.Move(path, filepath.Join(target, name), log); err != nil {
		report.fail(path, err)
		return
	}
	report.moved()
}

// collect walks directory on the calling goroutine and returns the regular
// files to organize, in lexical order.
func (o *Organizer) collect(directory string, excluded []string) ([]string, error) {
	skipDirs := make(map[string]struct{}, len(excluded))
	for _, dir := range excluded {
		skipDirs[filepath.Clean(dir)] = struct{}{}
	}
	logFile := changelog.PathFor(directory)
	tmpFile := logFile + paths.TempSuffix

	var files []string
	err := o.fs.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == directory {
				return err
			}
			o.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}

		if info.IsDir() {
			if _, skip := skipDirs[path]; skip && path != directory {
				o.logger.Debug().Str("directory", path).Msg("Skipping directory created by an earlier run")
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			o.logger.Trace().Str("path", path).Str("mode", info.Mode().String()).Msg("Skipping non-regular file")
			return nil
		}
		if path == logFile || path == tmpFile {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidTarget, "failed to read %s", directory)
	}
	return files, nil
}
