// Package testutil provides utilities for testing sortdir components.
//
// Key components:
//   - Environment: a temp directory tree with sortdir's state and config
//     directories redirected into it
//   - Tree helpers: declarative creation and listing of file trees
//   - MockFS: a testify mock over types.FS that passes through to a real
//     filesystem unless an expectation is registered for a method
//
// Usage guidelines:
//   - Organizer, sweeper and restorer tests run against real t.TempDir trees
//   - Change log persistence tests use the afero memory filesystem
//   - MockFS is only for failure injection
//   - Each test should be completely isolated with no shared state
package testutil
