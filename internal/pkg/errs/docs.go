// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the codebase.
//
// Error types cover the failure taxonomy of the order engine:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, recoverable by the caller
//   - ObjectNotFoundError: lookups by an unknown identifier
//   - StorageError: unreadable or corrupt persisted data
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() to the sentinel
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// transport-level mapping (HTTP status codes, logging) out of the core.
package errs
