// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths, pkg/filesystem
// PURPOSE: Isolated test environments with sortdir's own directories redirected

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/filesystem"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/types"
)

// Environment is a temp directory holding a target tree to organize plus
// the state and config directories sortdir would otherwise keep under XDG.
type Environment struct {
	// Target is the canonical directory tests organize and restore
	Target    string
	StateDir  string
	ConfigDir string

	FS    types.FS
	Paths paths.Paths

	t *testing.T
}

// NewEnvironment creates a fresh environment and points SORTDIR_STATE_DIR and
// SORTDIR_CONFIG_DIR at it for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Environment{
		Target:    filepath.Join(root, "target"),
		StateDir:  filepath.Join(root, "state"),
		ConfigDir: filepath.Join(root, "config"),
		FS:        filesystem.NewOS(),
		t:         t,
	}

	CreateDir(t, root, "target")

	t.Setenv(paths.EnvSortdirStateDir, env.StateDir)
	t.Setenv(paths.EnvSortdirConfigDir, env.ConfigDir)

	p, err := paths.New()
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// WithTree populates the target directory.
func (env *Environment) WithTree(tree FileTree) *Environment {
	env.t.Helper()
	CreateTree(env.t, env.Target, tree)
	return env
}

// Path joins a slash separated relative path onto the target directory.
func (env *Environment) Path(rel string) string {
	return filepath.Join(env.Target, filepath.FromSlash(rel))
}

// LogFile returns the change log location of the target directory.
func (env *Environment) LogFile() string {
	return paths.LogFilePath(env.Target)
}

// List returns the sorted contents of the target directory.
func (env *Environment) List() []string {
	env.t.Helper()
	return ListTree(env.t, env.Target)
}

// Snapshot returns the files of the target directory with their contents.
func (env *Environment) Snapshot() FileTree {
	env.t.Helper()
	return SnapshotTree(env.t, env.Target)
}
