// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure scenarios the transaction
// lifecycle distinguishes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - UnauthenticatedError: For when an operation requires a signed-in actor
//   - ForbiddenError: For when the actor's role does not permit an operation
//   - AlreadyProcessedError: For when a state transition was already applied
//   - AlreadyAppliedError: For when a user already has a seller request on file
//   - StoreError: For transient persistence-layer failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels. StoreError is
// the only kind that may indicate a transient fault; every other kind is a
// terminal validation or authorization decision and must not be retried.
package errs
