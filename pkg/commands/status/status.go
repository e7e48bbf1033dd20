// Package status provides the status command implementation for sortdir.
//
// The status command is read-only. It answers two questions about a
// directory:
//   - Has sortdir organized it? (is there a change log)
//   - Would restore still find every file? (restorable vs stale moves)
package status

import (
	"github.com/arthur-debert/sortdir/pkg/changelog"
	"github.com/arthur-debert/sortdir/pkg/commands/internal"
	"github.com/arthur-debert/sortdir/pkg/filesystem"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/types"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Directory to inspect
	Directory string

	// StrictLog rejects malformed records instead of reading leniently
	StrictLog bool

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Status reports what the change log of opts.Directory records. It takes
// no lock and changes nothing.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	fs := opts.FileSystem

	base, err := internal.ResolveDirectory(fs, opts.Directory)
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{
		Directory: base,
		LogFile:   changelog.PathFor(base),
	}

	exists, err := changelog.Exists(fs, base)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.Debug().Str("directory", base).Msg("No change log found")
		return result, nil
	}

	log, err := changelog.Load(fs, result.LogFile, changelog.ParseOptions{Strict: opts.StrictLog})
	if err != nil {
		return nil, err
	}

	result.HasLog = true
	result.CreatedDirectories = log.CreatedDirectories()
	result.RemovedDirectories = len(log.RemovedDirectories())

	moves := log.Moves()
	result.Moves = len(moves)
	for _, m := range moves {
		if _, err := fs.Lstat(m.NewPath); err != nil {
			logger.Trace().Str("path", m.NewPath).Msg("Organized file is gone")
			result.Stale = append(result.Stale, m)
			continue
		}
		result.Restorable++
	}

	logger.Info().
		Str("directory", base).
		Int("moves", result.Moves).
		Int("restorable", result.Restorable).
		Msg("Status collected")

	return result, nil
}
