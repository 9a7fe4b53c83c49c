// Package commands contains the state-changing operations of the
// engine. Every handler runs its whole transition inside one unit of
// work: status mutation, history append, and any wallet movement commit
// or roll back together.
package commands

import (
	"context"
	"errors"

	"couriernet/internal/core/ports"
)

// ErrConcurrencyConflict is returned when a capacity or balance
// re-check inside the transaction detects a race with a concurrent
// booking.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// Unit of Work interfaces scope each handler to the repositories it
// actually touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RouteRepoFactory provides the route repository bound to the
	// transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// WalletRepoFactory provides the wallet repository bound to the
	// transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// DriverRepoFactory provides the driver repository bound to the
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW covers transitions that touch the order aggregate only
	// (pickup acceptance, problem reports, history visibility).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignUoW covers driver assignment, which reads the driver and
	// writes the order.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// AssignUoWFactory creates assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// DriverUoW covers driver management.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// SettlementUoW covers the two transitions that move money: order
	// creation (customer debit) and delivery confirmation (carrier
	// credit). Both need the route network to resolve the relation's
	// vehicle and owner.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		WalletRepoFactory
	}

	// SettlementUoWFactory creates settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
