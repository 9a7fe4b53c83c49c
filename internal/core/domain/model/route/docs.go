// Package route models the stop-sequence side of the courier network:
// vehicles, the relations (named ordered stop sequences) they serve,
// the scheduled stops inside a relation, and the per-relation price
// list.
//
// A relation belongs to exactly one vehicle and owns an ordered stop
// sequence. Stops carry an order number that establishes strict
// physical sequence within their (vehicle, relation) pair; a stop with
// no relation assigned exists on the vehicle's schedule but is not
// matchable by the availability search.
package route
