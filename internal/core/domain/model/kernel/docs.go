// Package kernel contains shared value objects used across the domain
// model: UUID identifiers and TimeOfDay schedule entries.
//
// Value objects in this package are immutable, validate themselves on
// construction, and expose Validate for rehydration checks when they
// are rebuilt from persistence.
package kernel
