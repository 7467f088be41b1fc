// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ResourceConflictError: For when a concurrent actor claimed a resource first
//   - CapacityExceededError: For when a limit-bound container is full
//   - PreconditionFailedError: For when an entity is in the wrong state for a transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The conflict/capacity/precondition/not-found quartet is the error taxonomy
// exposed by the round lifecycle operations; the HTTP adapter maps each of
// them to a distinct status code.
package errs
