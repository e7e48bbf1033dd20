package config

import (
	"slices"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/paths"
)

// Validate checks values that would make a run misbehave
func Validate(cfg *Config) error {
	if cfg.Organize.Workers < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "organize.workers must be 0 or more, got %d", cfg.Organize.Workers).
			WithDetail("key", KeyWorkers)
	}

	if err := paths.ValidateBucketName(cfg.Organize.NoExtensionDir); err != nil {
		if sortdirErr, ok := err.(*errors.SortdirError); ok {
			return sortdirErr.WithDetail("key", KeyNoExtensionDir)
		}
		return err
	}

	if !slices.Contains(OutputFormats, cfg.Output.Format) {
		return errors.Newf(errors.ErrConfigInvalid, "output.format must be one of %v, got %q", OutputFormats, cfg.Output.Format).
			WithDetail("key", KeyFormat)
	}

	return nil
}
