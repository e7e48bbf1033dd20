// Package logging wraps zerolog setup for sortdir.
//
// The CLI calls SetupLogger once from the root command. Library packages never
// read the global logger: they receive a zerolog.Logger through their
// constructor options and derive component loggers with Component.
package logging
