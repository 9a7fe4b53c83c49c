package ports

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// OrderRepository defines the persistence contract for order aggregates
// and the entities that hang off them (status history, problems).
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *shipment.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *shipment.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error)

	// GetByOrderCode retrieves an order by its 14-digit code. Drivers
	// identify shipments by this code, never by internal IDs.
	GetByOrderCode(ctx context.Context, orderCode string) (*shipment.Order, error)

	// ExistsByOrderCode reports whether an order with the code exists.
	// Used by the creation loop to keep codes globally unique.
	ExistsByOrderCode(ctx context.Context, orderCode string) (bool, error)

	// GetActiveByRelationAndDate retrieves the orders that consume the
	// relation's vehicle capacity on the given calendar date.
	GetActiveByRelationAndDate(ctx context.Context, relationID kernel.UUID, date time.Time) ([]*shipment.Order, error)

	// AppendHistory adds one row to the order's status history. The log
	// is append-only; rows are never mutated.
	AppendHistory(ctx context.Context, change *shipment.StatusChange) error

	// GetHistory retrieves the order's status history ordered by change
	// time.
	GetHistory(ctx context.Context, orderID kernel.UUID) ([]*shipment.StatusChange, error)

	// PurgeHistory removes every history row of the order. The only
	// path that ever deletes history.
	PurgeHistory(ctx context.Context, orderID kernel.UUID) error

	// AddProblem persists a customer-raised intervention ticket.
	AddProblem(ctx context.Context, problem *shipment.Problem) error

	// PurgeProblems removes every problem ticket of the order. Only
	// called from the history purge, alongside PurgeHistory.
	PurgeProblems(ctx context.Context, orderID kernel.UUID) error

	// Remove deletes the order row itself. Only called from the history
	// purge after its problems and history are gone; everywhere else
	// orders are hidden via the soft-delete flags.
	Remove(ctx context.Context, id kernel.UUID) error
}
