// Package postgres implements the unit of work over GORM transactions.
// One unit of work spans one business transaction: the order mutation,
// its history row, and any wallet movement commit or roll back as a
// single database transaction.
package postgres

import (
	"context"

	"couriernet/internal/adapters/out/postgres/driverrepo"
	"couriernet/internal/adapters/out/postgres/orderrepo"
	"couriernet/internal/adapters/out/postgres/routerepo"
	"couriernet/internal/adapters/out/postgres/walletrepo"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate touched during the unit of
// work, for post-commit processing such as event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates isolated unit of work instances over a
// shared GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory wires the factory to a database connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out. Repositories obtained before Begin run
// against the bare connection; after Begin they share the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again on an active unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Calling it with no active
// transaction, including after a successful Commit, is a no-op so
// handlers can defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the bare connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewRepository(uow.conn(), uow)
}

// RouteRepository returns a route repository bound to the current
// transaction, or to the bare connection when none is active.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewRepository(uow.conn())
}

// WalletRepository returns a wallet repository bound to the current
// transaction, or to the bare connection when none is active.
func (uow *GormUnitOfWork) WalletRepository() ports.WalletRepository {
	return walletrepo.NewRepository(uow.conn(), uow)
}

// DriverRepository returns a driver repository bound to the current
// transaction, or to the bare connection when none is active.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate touched within this unit of
// work. Called by the repositories, not by application code.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
