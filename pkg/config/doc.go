// Package config handles configuration management for sortdir.
// It layers the embedded defaults, the user's config.toml, SORTDIR_*
// environment variables and command-line flags, in that order.
package config
