// Package paths provides centralized path handling for sortdir.
//
// It covers two kinds of locations:
//
//   - Locations inside an organized directory: the change log file
//     (LogFileName) and its temporary sibling used while saving.
//   - sortdir's own XDG directories: configuration, the diagnostic log,
//     per-tree lock files and orphaned change logs.
//
// # Environment Variables
//
//   - SORTDIR_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/sortdir)
//   - SORTDIR_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/sortdir)
//
// # Canonicalization
//
// Canonicalize is the bootstrap every command applies to its argument before
// handing it to the core: home expansion, absolute path, symlink resolution.
// Paths stored in change logs are always canonical.
package paths
