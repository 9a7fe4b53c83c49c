package driverrepo

import (
	"context"
	"errors"
	"fmt"

	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker lets the unit of work record every aggregate that
// passed through a repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Repository is the PostgreSQL implementation of ports.DriverRepository.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewRepository creates the driver repository bound to the given
// connection (or transaction) and tracker.
func NewRepository(db *gorm.DB, tracker aggregateTracker) *Repository {
	return &Repository{db: db, tracker: tracker}
}

// Add persists a new driver.
func (r *Repository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// Get retrieves a driver by its identifier.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	var dto DriverDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select driver: %w", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetByIDCode retrieves a driver by the 9-digit login code.
func (r *Repository) GetByIDCode(ctx context.Context, idCode string) (*driver.Driver, error) {
	var dto DriverDTO
	err := r.db.WithContext(ctx).First(&dto, "id_code = ?", idCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("driver", idCode)
	}
	if err != nil {
		return nil, fmt.Errorf("select driver by code: %w", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// ExistsByIDCode reports whether a driver with the code exists.
func (r *Repository) ExistsByIDCode(ctx context.Context, idCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id_code = ?", idCode).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count drivers by code: %w", err)
	}
	return count > 0, nil
}

// GetByOwner retrieves every driver employed by the carrier.
func (r *Repository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("last_name ASC, first_name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select drivers by owner: %w", err)
	}

	aggregates := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}
