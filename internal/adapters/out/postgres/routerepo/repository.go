package routerepo

import (
	"context"
	"errors"
	"fmt"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
	"couriernet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the PostgreSQL implementation of ports.RouteRepository.
// The engine never writes route data, so the repository is read-only
// and tracks no aggregates.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates the route repository bound to the given
// connection (or transaction).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetStopsByName retrieves every relation-assigned stop with the given
// name, across all relations.
func (r *Repository) GetStopsByName(ctx context.Context, name string) ([]*route.Stop, error) {
	var dtos []StopDTO
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Where("relation_id IS NOT NULL").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select stops by name: %w", err)
	}

	return stopsToDomain(dtos)
}

// GetRelationStops retrieves the relation's stop sequence ordered by
// order number.
func (r *Repository) GetRelationStops(ctx context.Context, relationID kernel.UUID) ([]*route.Stop, error) {
	var dtos []StopDTO
	err := r.db.WithContext(ctx).
		Where("relation_id = ?", relationID.Bytes()).
		Order("order_number ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("select relation stops: %w", err)
	}

	return stopsToDomain(dtos)
}

// GetRelation retrieves a relation by its identifier.
func (r *Repository) GetRelation(ctx context.Context, id kernel.UUID) (*route.Relation, error) {
	var dto RelationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("relation", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select relation: %w", err)
	}

	return relationToDomain(dto)
}

// GetRelationForUpdate retrieves a relation under a row lock held until
// the surrounding transaction ends. Order creation takes this lock to
// serialize capacity checks per relation.
func (r *Repository) GetRelationForUpdate(ctx context.Context, id kernel.UUID) (*route.Relation, error) {
	var dto RelationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("relation", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select relation for update: %w", err)
	}

	return relationToDomain(dto)
}

// GetVehicle retrieves a vehicle by its identifier.
func (r *Repository) GetVehicle(ctx context.Context, id kernel.UUID) (*route.Vehicle, error) {
	var dto VehicleDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("vehicle", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select vehicle: %w", err)
	}

	return vehicleToDomain(dto)
}

// GetPriceList retrieves the relation's price list, or nil when the
// relation has none. A missing price list is a valid configuration
// meaning all segments on the relation are free.
func (r *Repository) GetPriceList(ctx context.Context, relationID kernel.UUID) (*route.PriceList, error) {
	var dto PriceListDTO
	err := r.db.WithContext(ctx).First(&dto, "relation_id = ?", relationID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select price list: %w", err)
	}

	return priceListToDomain(dto)
}

func stopsToDomain(dtos []StopDTO) ([]*route.Stop, error) {
	stops := make([]*route.Stop, 0, len(dtos))
	for _, dto := range dtos {
		stop, err := stopToDomain(dto)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}
