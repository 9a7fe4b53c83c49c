// Package routerepo reads the carrier-maintained route network from
// PostgreSQL: vehicles, relations, stops, and price lists.
package routerepo

import (
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// VehicleDTO is the database row for a carrier vehicle.
type VehicleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Model              string
	Capacity           int
	RegistrationNumber string
	OwnerID            uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// RelationDTO is the database row for a scheduled route.
type RelationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	VehicleID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming.
func (RelationDTO) TableName() string {
	return "relations"
}

// StopDTO is the database row for a named stop on a vehicle's route.
// Arrival and Departure hold wall-clock times as "HH:MM" strings; the
// calendar date comes from the order, not the stop.
type StopDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;index"`
	RelationID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"index"`
	Arrival     string     `gorm:"size:5"`
	Departure   string     `gorm:"size:5"`
	OrderNumber int
}

// TableName overrides GORM's default naming.
func (StopDTO) TableName() string {
	return "stops"
}

// PriceListDTO is the database row for a relation's pricing.
type PriceListDTO struct {
	RelationID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BasePrice    float64
	PricePerStop float64
}

// TableName overrides GORM's default naming.
func (PriceListDTO) TableName() string {
	return "price_lists"
}

func vehicleToDomain(dto VehicleDTO) (*route.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreVehicle(id, dto.Model, dto.Capacity, dto.RegistrationNumber, ownerID)
}

func relationToDomain(dto RelationDTO) (*route.Relation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRelation(id, dto.Name, vehicleID)
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var relationID *kernel.UUID
	if dto.RelationID != nil {
		rID, relationErr := kernel.UUIDFromBytes((*dto.RelationID)[:])
		if relationErr != nil {
			return nil, relationErr
		}
		relationID = &rID
	}

	arrival, err := kernel.ParseTimeOfDay(dto.Arrival)
	if err != nil {
		return nil, err
	}
	departure, err := kernel.ParseTimeOfDay(dto.Departure)
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(id, vehicleID, relationID, dto.Name, arrival, departure, dto.OrderNumber)
}

func priceListToDomain(dto PriceListDTO) (*route.PriceList, error) {
	relationID, err := kernel.UUIDFromBytes(dto.RelationID[:])
	if err != nil {
		return nil, err
	}

	return route.RestorePriceList(relationID, dto.BasePrice, dto.PricePerStop)
}
