package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker lets the unit of work record every aggregate that
// passed through a repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Repository is the PostgreSQL implementation of ports.OrderRepository.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewRepository creates the order repository bound to the given
// connection (or transaction) and tracker.
func NewRepository(db *gorm.DB, tracker aggregateTracker) *Repository {
	return &Repository{db: db, tracker: tracker}
}

// Add persists a new order aggregate.
func (r *Repository) Add(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update persists changes to an existing order aggregate.
func (r *Repository) Update(ctx context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return fmt.Errorf("update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by its identifier.
func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetByOrderCode retrieves an order by its 14-digit code.
func (r *Repository) GetByOrderCode(ctx context.Context, orderCode string) (*shipment.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "order_code = ?", orderCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", orderCode)
	}
	if err != nil {
		return nil, fmt.Errorf("select order by code: %w", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// ExistsByOrderCode reports whether an order with the code exists.
func (r *Repository) ExistsByOrderCode(ctx context.Context, orderCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_code = ?", orderCode).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count orders by code: %w", err)
	}
	return count > 0, nil
}

// GetActiveByRelationAndDate retrieves the orders consuming the
// relation's capacity on the given calendar date.
func (r *Repository) GetActiveByRelationAndDate(ctx context.Context, relationID kernel.UUID, date time.Time) ([]*shipment.Order, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("relation_id = ?", relationID.Bytes()).
		Where("departure >= ? AND departure < ?", dayStart, dayEnd).
		Where("status IN ?", []int{
			int(shipment.StatusNadana),
			int(shipment.StatusPrzypisanoKierowce),
			int(shipment.StatusPrzyjetaOdKlienta),
		}).
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select active orders: %w", err)
	}

	aggregates := make([]*shipment.Order, 0, len(dtos))
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

// AppendHistory adds one row to the order's status history.
func (r *Repository) AppendHistory(ctx context.Context, change *shipment.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := changeFromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert status change: %w", err)
	}
	return nil
}

// GetHistory retrieves the order's status history in change order.
func (r *Repository) GetHistory(ctx context.Context, orderID kernel.UUID) ([]*shipment.StatusChange, error) {
	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("changed_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select status changes: %w", err)
	}

	changes := make([]*shipment.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, restoreErr := changeToDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// PurgeHistory removes every history row of the order.
func (r *Repository) PurgeHistory(ctx context.Context, orderID kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&StatusChangeDTO{}).Error
	if err != nil {
		return fmt.Errorf("delete status changes: %w", err)
	}
	return nil
}

// AddProblem persists a customer-raised intervention ticket.
func (r *Repository) AddProblem(ctx context.Context, problem *shipment.Problem) error {
	if err := problem.Validate(); err != nil {
		return err
	}

	dto := problemFromDomain(problem)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert shipment problem: %w", err)
	}
	return nil
}

// PurgeProblems removes every problem ticket of the order.
func (r *Repository) PurgeProblems(ctx context.Context, orderID kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&ProblemDTO{}).Error
	if err != nil {
		return fmt.Errorf("delete shipment problems: %w", err)
	}
	return nil
}

// Remove deletes the order row itself.
func (r *Repository) Remove(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return fmt.Errorf("delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}
