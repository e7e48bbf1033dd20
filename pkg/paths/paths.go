// Package paths provides centralized path handling for sortdir.
// It implements XDG Base Directory specification compliance for sortdir's
// own files and the canonicalization applied to user supplied targets.
package paths

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sortdir/pkg/errors"
)

// Environment variable names
const (
	// EnvSortdirConfigDir overrides the XDG config directory for sortdir
	EnvSortdirConfigDir = "SORTDIR_CONFIG_DIR"

	// EnvSortdirStateDir overrides the XDG state directory for sortdir
	EnvSortdirStateDir = "SORTDIR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: LogFileName is the idempotency marker of an organized tree.
// Changing it makes every existing tree look unorganized, so it is NOT
// user-configurable. User-configurable names belong in pkg/config.
const (
	// AppDirName is the directory name for sortdir-specific files
	AppDirName = "sortdir"

	// LogFileName is the change log kept inside an organized directory
	LogFileName = ".sortdir_log"

	// TempSuffix is appended to the change log while it is being written
	TempSuffix = ".tmp"

	// DefaultNoExtensionDir is the bucket for files without an extension
	DefaultNoExtensionDir = "no_extension"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// ToolLogFileName is sortdir's own diagnostic log inside StateDir
	ToolLogFileName = "sortdir.log"

	locksDir  = "locks"
	orphanDir = "orphaned"
)

// Paths provides centralized path management for sortdir
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	StateDir() string
	LockDir() string
	LockPath(baseDirectory string) string
	OrphanDir() string
	ToolLogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance, respecting environment overrides.
func New() (Paths, error) {
	p := &paths{}

	if configDir := os.Getenv(EnvSortdirConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvSortdirStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.xdgConfig, &p.xdgState} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the XDG config directory for sortdir
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the XDG state directory for sortdir
func (p *paths) StateDir() string {
	return p.xdgState
}

// LockDir returns the directory holding per-tree lock files
func (p *paths) LockDir() string {
	return filepath.Join(p.xdgState, locksDir)
}

// LockPath returns the lock file guarding baseDirectory. The name is derived
// from the directory so that two spellings of one canonical path share a lock.
func (p *paths) LockPath(baseDirectory string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(baseDirectory)))
	return filepath.Join(p.LockDir(), hex.EncodeToString(sum[:8])+".lock")
}

// OrphanDir returns where change logs go when they cannot be written into
// their own tree
func (p *paths) OrphanDir() string {
	return filepath.Join(p.xdgState, orphanDir)
}

// ToolLogFilePath returns sortdir's diagnostic log file
func (p *paths) ToolLogFilePath() string {
	return filepath.Join(p.xdgState, ToolLogFileName)
}

// LogFilePath returns the change log location for an organized directory
func LogFilePath(directory string) string {
	return filepath.Join(directory, LogFileName)
}

// Canonicalize turns a user supplied path into a clean absolute path with
// symlinks resolved. The path must exist.
func Canonicalize(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidTarget, "failed to get absolute path for %s", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrInvalidTarget, "path does not exist: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrInvalidTarget, "failed to resolve %s", path)
	}

	return filepath.Clean(resolved), nil
}

// IsWithin reports whether path is dir itself or lies below it.
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:2] == ".." && rel[2] == filepath.Separator
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
