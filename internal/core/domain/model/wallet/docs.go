// Package wallet holds the virtual money ledger. A wallet belongs to a
// single user; shipment bookings debit the customer's wallet and
// completed deliveries credit the carrier's, always inside the same
// transaction as the order change.
package wallet
