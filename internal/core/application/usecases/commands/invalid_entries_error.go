package commands

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/pkg/errs"
)

// InvalidEntriesError reports the ids of bulk import entries that failed validation.
// It unwraps to errs.ErrValueIsInvalid and to every per-entry cause.
type InvalidEntriesError struct {
	Kind  string
	IDs   []int
	Cause error
}

func newInvalidEntriesError(kind string, failures map[int]error) *InvalidEntriesError {
	ids := make([]int, 0, len(failures))
	causes := make([]error, 0, len(failures))
	for id := range failures {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		causes = append(causes, fmt.Errorf("%s %d: %w", kind, id, failures[id]))
	}
	return &InvalidEntriesError{Kind: kind, IDs: ids, Cause: errors.Join(causes...)}
}

func (e *InvalidEntriesError) Error() string {
	return fmt.Sprintf("%s: %s entries %v (cause: %v)", errs.ErrValueIsInvalid, e.Kind, e.IDs, e.Cause)
}

func (e *InvalidEntriesError) Unwrap() []error {
	return []error{errs.ErrValueIsInvalid, e.Cause}
}
