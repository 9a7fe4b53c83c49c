// Package driverrepo persists driver aggregates.
package driverrepo

import (
	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a driver aggregate.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	FirstName string
	LastName  string
	IDCode    string `gorm:"size:9;uniqueIndex"`
	PinCode   string `gorm:"size:4"`
}

// TableName overrides GORM's default naming.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		IDCode:    aggregate.IDCode(),
		PinCode:   aggregate.PinCode(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, ownerID, dto.FirstName, dto.LastName, dto.IDCode, dto.PinCode)
}
