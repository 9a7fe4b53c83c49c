// Package services contains stateless domain services spanning several
// aggregates. CourseFinder implements the availability search that
// matches shipment requests against relation stop sequences under time
// and capacity constraints.
package services
