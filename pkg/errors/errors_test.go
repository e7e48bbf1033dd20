// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_target_error",
			code:    errors.ErrInvalidTarget,
			message: "not a directory",
			wantStr: "[INVALID_TARGET] not a directory",
		},
		{
			name:    "corrupt_log_error",
			code:    errors.ErrCorruptLog,
			message: "log file is empty",
			wantStr: "[CORRUPT_LOG] log file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrMove, "failed to move %s", "/a/b.txt")

		if err.Code != errors.ErrMove {
			t.Errorf("Wrapf() code = %v, want %v", err.Code, errors.ErrMove)
		}

		wantStr := "[MOVE_FAILED] failed to move /a/b.txt: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("Wrapf() should preserve the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrapf(nil, errors.ErrMove, "noop"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMove, "rename failed").
		WithDetail("old", "/src/a.txt").
		WithDetail("new", "/src/txt/a.txt")

	if err.Details["old"] != "/src/a.txt" {
		t.Errorf("WithDetail() old = %v", err.Details["old"])
	}
	if got := errors.GetErrorDetails(err)["new"]; got != "/src/txt/a.txt" {
		t.Errorf("GetErrorDetails() new = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDirRemove, "error 1")
	err2 := errors.New(errors.ErrDirRemove, "error 2")
	err3 := errors.New(errors.ErrDirCreate, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"sortdir_error", errors.New(errors.ErrLogPersist, "x"), errors.ErrLogPersist},
		{"fmt_wrapped", fmt.Errorf("outer: %w", errors.New(errors.ErrLocked, "x")), errors.ErrLocked},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	fatal := []errors.ErrorCode{
		errors.ErrInvalidTarget, errors.ErrNotFound, errors.ErrCorruptLog,
		errors.ErrLogRead, errors.ErrLocked, errors.ErrConfigInvalid,
	}
	for _, code := range fatal {
		if !errors.IsFatal(errors.New(code, "x")) {
			t.Errorf("IsFatal(%s) = false, want true", code)
		}
	}

	perItem := []errors.ErrorCode{
		errors.ErrDirCreate, errors.ErrMove, errors.ErrDirRemove, errors.ErrLogPersist,
	}
	for _, code := range perItem {
		if errors.IsFatal(errors.New(code, "x")) {
			t.Errorf("IsFatal(%s) = true, want false", code)
		}
	}

	if errors.IsFatal(nil) {
		t.Error("IsFatal(nil) = true")
	}
}
