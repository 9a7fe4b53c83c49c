package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so
// concurrent operations never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Every state-changing
// command writes the order, its history row, and any wallet movement
// through one unit of work so the whole transition commits or rolls
// back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op, so it can be deferred.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository

	// WalletRepository returns a WalletRepository bound to the current
	// transaction.
	WalletRepository() WalletRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository
}
