package paths

import (
	"strings"

	"github.com/arthur-debert/sortdir/pkg/errors"
)

// ValidatePath performs basic validation on a user supplied path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidTarget, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidTarget, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidTarget, "path exceeds maximum length")
	}

	return nil
}

// ValidateBucketName ensures a bucket directory name can be joined onto the
// organized directory without escaping it.
func ValidateBucketName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrConfigInvalid, "bucket name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrConfigInvalid, "bucket name cannot contain path separators")
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrConfigInvalid, "bucket name cannot be '.' or '..'")
	}

	if name == LogFileName || name == LogFileName+TempSuffix {
		return errors.Newf(errors.ErrConfigInvalid, "bucket name cannot be %q", name)
	}

	return nil
}
