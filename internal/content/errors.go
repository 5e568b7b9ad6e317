package content

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/abhisek/flashlingo/internal/exam"
)

// ErrUnsupportedCatalog is returned for a catalog manifest whose major version
// this build does not understand.
var ErrUnsupportedCatalog = errors.New("unsupported catalog version")

// SetNotFoundError indicates the catalog has no set for the requested id. For the
// languages without exams this is the normal answer.
type SetNotFoundError struct {
	ID exam.SetID
}

func (e *SetNotFoundError) Error() string {
	return fmt.Sprintf("no exam available for %s", e.ID)
}

// RecordError reports a malformed record inside a question set.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// StatusError is returned by HTTPFetcher for non-200 responses. A 404 also
// matches fs.ErrNotExist.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Code)
}

// Is lets errors.Is(err, fs.ErrNotExist) treat a 404 like a missing file.
func (e *StatusError) Is(target error) bool {
	return target == fs.ErrNotExist && e.Code == 404
}
