package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every concrete error type in this package unwraps to one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrConflict            = errors.New("conflict")
	ErrConstraintViolation = errors.New("constraint violation")
)

// ObjectNotFoundError reports a missing courier, order or other object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError reports an operation that contradicts the current state of an object:
// an order assigned to another courier, an order completed twice, a duplicate id.
type ConflictError struct {
	ParamName string
	ID        any
	Reason    string
}

func NewConflictError(paramName string, id any, reason string) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Reason: reason}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrConflict, e.ParamName, sanitize(e.ID), e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ConstraintViolationError reports an assignment that breaks a region, window or capacity rule.
// It is produced by internal invariant checks only.
type ConstraintViolationError struct {
	Constraint string
	CourierID  int
	OrderID    int
	Detail     string
}

func NewConstraintViolationError(constraint string, courierID, orderID int, detail string) *ConstraintViolationError {
	return &ConstraintViolationError{
		Constraint: constraint,
		CourierID:  courierID,
		OrderID:    orderID,
		Detail:     detail,
	}
}

func (e *ConstraintViolationError) Error() string {
	if e.OrderID == 0 {
		return fmt.Sprintf("%s: %s: courier %d: %s", ErrConstraintViolation, e.Constraint, e.CourierID, e.Detail)
	}
	return fmt.Sprintf("%s: %s: courier %d, order %d: %s",
		ErrConstraintViolation, e.Constraint, e.CourierID, e.OrderID, e.Detail)
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// sanitize flattens multi-line values so they fit in a single log line.
func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.ReplaceAll(s, "\n", " ")
}
