// Package errs provides standardized error types for the courier network
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific failures (insufficient funds, invalid verification
// code, invalid status transition) are declared as sentinels in their
// owning domain packages; this package covers only the generic taxonomy.
package errs
