package route

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrRelationIsNotConstructed is returned when a Relation instance was
// not created through NewRelation or RestoreRelation.
var ErrRelationIsNotConstructed = errors.New("Relation must be created via NewRelation or RestoreRelation")

// Relation is a named ordered stop sequence served by exactly one
// vehicle. It is the unit of route matching: a course offered by the
// availability search is always a segment of a single relation, and
// orders reference the relation they travel on.
type Relation struct {
	id        kernel.UUID
	name      string
	vehicleID kernel.UUID

	isConstructed bool
}

// NewRelation creates a relation on the given vehicle.
func NewRelation(id kernel.UUID, name string, vehicleID kernel.UUID) (*Relation, error) {
	r := &Relation{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRelation rebuilds a relation from persistence.
func RestoreRelation(id kernel.UUID, name string, vehicleID kernel.UUID) (*Relation, error) {
	return NewRelation(id, name, vehicleID)
}

// Validate ensures the relation came from a constructor.
func (r *Relation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRelationIsNotConstructed
	}
	return nil
}

// ID returns the relation identifier.
func (r *Relation) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable relation name.
func (r *Relation) Name() string {
	return r.name
}

// VehicleID returns the vehicle serving this relation.
func (r *Relation) VehicleID() kernel.UUID {
	return r.vehicleID
}

func (r *Relation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Relation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Relation) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	return nil
}
