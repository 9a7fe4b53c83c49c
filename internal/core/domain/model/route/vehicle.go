package route

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

// Vehicle is a carrier-owned vehicle with a fixed capacity expressed in
// shipment slots. Capacity is the hard ceiling the availability search
// enforces: the summed size weight of all active orders on one of the
// vehicle's relations for a calendar day may never exceed it.
type Vehicle struct {
	id                 kernel.UUID
	model              string
	capacity           int
	registrationNumber string
	ownerID            kernel.UUID

	isConstructed bool
}

// NewVehicle creates a vehicle owned by the given carrier. Capacity
// must be positive; model and registration number must be present.
func NewVehicle(id kernel.UUID, model string, capacity int, registrationNumber string, ownerID kernel.UUID) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setModel(model),
		v.setCapacity(capacity),
		v.setRegistrationNumber(registrationNumber),
		v.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from persistence, applying the same
// validation as NewVehicle.
func RestoreVehicle(id kernel.UUID, model string, capacity int, registrationNumber string, ownerID kernel.UUID) (*Vehicle, error) {
	return NewVehicle(id, model, capacity, registrationNumber, ownerID)
}

// Validate ensures the vehicle came from a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Model returns the vehicle model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Capacity returns the vehicle capacity in shipment slots.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// RegistrationNumber returns the vehicle's plate number.
func (v *Vehicle) RegistrationNumber() string {
	return v.registrationNumber
}

// OwnerID returns the carrier that owns the vehicle.
func (v *Vehicle) OwnerID() kernel.UUID {
	return v.ownerID
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setRegistrationNumber(registrationNumber string) error {
	if registrationNumber == "" {
		return errs.NewValueIsRequiredError("registrationNumber")
	}
	v.registrationNumber = registrationNumber
	return nil
}

func (v *Vehicle) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}
