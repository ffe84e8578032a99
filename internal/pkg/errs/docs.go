// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a courier or order id does not exist
//   - ConflictError: the operation contradicts the current state of an object
//   - ConstraintViolationError: an assignment breaks a region, window or capacity rule
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
package errs
