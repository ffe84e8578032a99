package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──Assign──> Assigned ──Complete──> Completed
//	   ^                   │
//	   └─────Unassign──────┘
//
// Completed is final. An Assigned order is never reassigned directly: it must be
// unassigned back to the pool first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the unassigned state: the order sits in the pool.
	Created

	// Assigned indicates the order is carried by a courier and not yet delivered.
	Assigned

	// Completed indicates the order has been delivered.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of Created, Assigned, Completed.
func (s Status) Validate() error {
	if s != Created && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions Created -> Assigned.
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, s.transitionError("assign")
	}
	return Assigned, nil
}

// Unassign transitions Assigned -> Created.
func (s Status) Unassign() (Status, error) {
	if s != Assigned {
		return 0, s.transitionError("unassign")
	}
	return Created, nil
}

// Complete transitions Assigned -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, s.transitionError("complete")
	}
	return Completed, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
