package organizer

import (
	"sync"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/hashicorp/go-multierror"
)

// Report summarizes one Organize call. Counters are only meaningful once
// Organize has returned.
type Report struct {
	Attempted int
	Moved     int
	Skipped   int
	Failures  []types.Failure

	mu   sync.Mutex
	errs *multierror.Error
}

// Err returns every per-file failure combined, or nil.
func (r *Report) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs.ErrorOrNil()
}

func (r *Report) moved() {
	r.mu.Lock()
	r.Moved++
	r.mu.Unlock()
}

func (r *Report) skipped() {
	r.mu.Lock()
	r.Skipped++
	r.mu.Unlock()
}

func (r *Report) fail(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = multierror.Append(r.errs, err)
	r.Failures = append(r.Failures, NewFailure(path, err))
}

// NewFailure converts a per-item error into its reportable form.
func NewFailure(path string, err error) types.Failure {
	return types.Failure{
		Path:  path,
		Code:  string(errors.GetErrorCode(err)),
		Error: err.Error(),
	}
}
