// Package types defines the core types and interfaces shared by sortdir's
// packages: the FS abstraction every component performs its I/O through,
// the MoveRecord fact stored in change logs, and the result structures the
// commands hand to the renderers.
package types
