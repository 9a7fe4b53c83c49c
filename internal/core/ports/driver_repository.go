package ports

import (
	"context"

	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByIDCode retrieves a driver by the 9-digit login code.
	GetByIDCode(ctx context.Context, idCode string) (*driver.Driver, error)

	// ExistsByIDCode reports whether a driver with the code exists.
	// Used by driver creation to keep login codes unique.
	ExistsByIDCode(ctx context.Context, idCode string) (bool, error)

	// GetByOwner retrieves every driver employed by the carrier.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*driver.Driver, error)
}
