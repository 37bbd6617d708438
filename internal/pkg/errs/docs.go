// Package errs provides standardized error types for the parcel tracker.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps onto the three client-facing failure classes:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Not found: ObjectNotFoundError
//   - Conflict: ConflictError, for business-rule violations such as checking out
//     a guest who still has unclaimed parcels
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// Anything that does not unwrap to one of the sentinels is treated by the
// transport layer as an unclassified failure.
package errs
