// Package shipment contains the order aggregate and its satellites:
// the lifecycle status state machine, the size classes with their
// capacity weights, the pickup/delivery verification codes, the
// append-only status history entries, and customer-raised shipment
// problems.
//
// The order lifecycle is a one-way progression with one branch:
//
//	Nadana ──> Przypisano kierowcę ──> Przyjęta od klienta ──> Dostarczona
//	   │               │                        │
//	   └───────────────┴────────────────────────┴──> Interwencja
//
// Dostarczona is the terminal success state. Interwencja is the
// terminal exception state entered through a problem report; it can
// only be left through an explicit manual override.
package shipment
