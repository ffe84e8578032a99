// Package guard provides ConstructorGuard, a marker that lets domain objects, commands and
// queries detect that they were created as a zero value instead of through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by that struct's constructor.
// A zero-value guard fails validation.
//
// Example usage:
//
//	var ErrWindowNotConstructed = errors.New("TimeWindow must be created via NewTimeWindow")
//
//	type TimeWindow struct {
//	    start, end int
//	    guard      guard.ConstructorGuard
//	}
//
//	func (w TimeWindow) Validate() error {
//	    return w.guard.Validate(ErrWindowNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
