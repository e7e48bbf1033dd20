// Package commands provides high-level command implementations for sortdir.
//
// This package contains the orchestration layer between the CLI and the
// organizer, sweeper and restorer. Each command lives in its own
// subdirectory:
//   - organize/ - Organize command
//   - restore/  - Restore command
//   - status/   - Status command
//   - internal/ - Shared precondition checks
//
// This file re-exports the command functions so the CLI imports one package.
package commands

import (
	"context"

	"github.com/arthur-debert/sortdir/pkg/commands/organize"
	"github.com/arthur-debert/sortdir/pkg/commands/restore"
	"github.com/arthur-debert/sortdir/pkg/commands/status"
	"github.com/arthur-debert/sortdir/pkg/types"
)

// OrganizeOptions configures Organize.
type OrganizeOptions = organize.OrganizeOptions

// Organize sorts a directory into extension buckets and persists its change log.
func Organize(ctx context.Context, opts OrganizeOptions) (*types.OrganizeResult, error) {
	return organize.Organize(ctx, opts)
}

// RestoreOptions configures Restore.
type RestoreOptions = restore.RestoreOptions

// Restore replays a change log backwards.
func Restore(opts RestoreOptions) (*types.RestoreResult, error) {
	return restore.Restore(opts)
}

// StatusOptions configures Status.
type StatusOptions = status.StatusOptions

// Status reports on a directory's change log without changing anything.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	return status.Status(opts)
}
