// Package orderrepo persists order aggregates, their status history,
// and problem tickets, mapping between domain objects and database
// rows.
package orderrepo

import (
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	RelationID       uuid.UUID  `gorm:"type:uuid;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	Size             int
	StartStop        string
	EndStop          string
	Departure        time.Time `gorm:"index"`
	Arrival          time.Time
	Price            float64
	OrderCode        string `gorm:"size:14;uniqueIndex"`
	PickupCode       string `gorm:"size:4"`
	DeliveryCode     string `gorm:"size:4"`
	Status           int    `gorm:"index"`
	DeletedByUser    bool
	DeletedByCarrier bool
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeDTO is one row of the append-only status log.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	ChangedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// ProblemDTO is the database row for an intervention ticket.
type ProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid"`
	Description string
	ReportedAt  time.Time
}

// TableName overrides GORM's default naming.
func (ProblemDTO) TableName() string {
	return "shipment_problems"
}

func fromDomain(aggregate *shipment.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		RelationID:       aggregate.RelationID().Bytes(),
		DriverID:         driverID,
		Size:             int(aggregate.Size()),
		StartStop:        aggregate.StartStop(),
		EndStop:          aggregate.EndStop(),
		Departure:        aggregate.Departure(),
		Arrival:          aggregate.Arrival(),
		Price:            aggregate.Price(),
		OrderCode:        aggregate.OrderCode(),
		PickupCode:       aggregate.PickupCode(),
		DeliveryCode:     aggregate.DeliveryCode(),
		Status:           int(aggregate.Status()),
		DeletedByUser:    aggregate.DeletedByUser(),
		DeletedByCarrier: aggregate.DeletedByCarrier(),
	}
}

func toDomain(dto OrderDTO) (*shipment.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	relationID, err := kernel.UUIDFromBytes(dto.RelationID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return shipment.RestoreOrder(
		id,
		customerID,
		relationID,
		driverID,
		shipment.Size(dto.Size),
		dto.StartStop,
		dto.EndStop,
		dto.Departure,
		dto.Arrival,
		dto.Price,
		dto.OrderCode,
		dto.PickupCode,
		dto.DeliveryCode,
		shipment.Status(dto.Status),
		dto.DeletedByUser,
		dto.DeletedByCarrier,
	)
}

func changeFromDomain(change *shipment.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		ID:        change.ID().Bytes(),
		OrderID:   change.OrderID().Bytes(),
		Status:    int(change.Status()),
		ChangedAt: change.ChangedAt(),
	}
}

func changeToDomain(dto StatusChangeDTO) (*shipment.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreStatusChange(id, orderID, shipment.Status(dto.Status), dto.ChangedAt)
}

func problemFromDomain(problem *shipment.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          problem.ID().Bytes(),
		OrderID:     problem.OrderID().Bytes(),
		CustomerID:  problem.CustomerID().Bytes(),
		Description: problem.Description(),
		ReportedAt:  problem.ReportedAt(),
	}
}
