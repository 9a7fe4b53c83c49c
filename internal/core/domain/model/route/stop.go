package route

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not
// created through NewStop or RestoreStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop")

// Stop is one scheduled arrival/departure entry on a vehicle,
// optionally assigned to a relation. Within one (vehicle, relation)
// pair the order numbers are distinct and monotonically reflect the
// physical stop sequence; that sequence drives segment matching and
// per-stop pricing.
//
// A stop whose relation is unset is on the vehicle's schedule but is
// invisible to the availability search.
type Stop struct {
	id          kernel.UUID
	vehicleID   kernel.UUID
	relationID  *kernel.UUID
	name        string
	arrival     kernel.TimeOfDay
	departure   kernel.TimeOfDay
	orderNumber int

	isConstructed bool
}

// NewStop creates a schedule stop. relationID may be nil for stops not
// yet assigned to a relation. The order number must be at least 1.
func NewStop(
	id kernel.UUID,
	vehicleID kernel.UUID,
	relationID *kernel.UUID,
	name string,
	arrival kernel.TimeOfDay,
	departure kernel.TimeOfDay,
	orderNumber int,
) (*Stop, error) {
	s := &Stop{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setVehicleID(vehicleID),
		s.setRelationID(relationID),
		s.setName(name),
		s.setArrival(arrival),
		s.setDeparture(departure),
		s.setOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStop rebuilds a stop from persistence.
func RestoreStop(
	id kernel.UUID,
	vehicleID kernel.UUID,
	relationID *kernel.UUID,
	name string,
	arrival kernel.TimeOfDay,
	departure kernel.TimeOfDay,
	orderNumber int,
) (*Stop, error) {
	return NewStop(id, vehicleID, relationID, name, arrival, departure, orderNumber)
}

// Validate ensures the stop came from a constructor.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// ID returns the stop identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// VehicleID returns the vehicle this schedule entry belongs to.
func (s *Stop) VehicleID() kernel.UUID {
	return s.vehicleID
}

// RelationID returns the assigned relation, or nil for an unassigned
// stop.
func (s *Stop) RelationID() *kernel.UUID {
	return s.relationID
}

// IsAssigned reports whether the stop belongs to a relation and is
// therefore matchable.
func (s *Stop) IsAssigned() bool {
	return s.relationID != nil
}

// Name returns the stop name used for matching start/end stops.
func (s *Stop) Name() string {
	return s.name
}

// Arrival returns the scheduled arrival time of day.
func (s *Stop) Arrival() kernel.TimeOfDay {
	return s.arrival
}

// Departure returns the scheduled departure time of day.
func (s *Stop) Departure() kernel.TimeOfDay {
	return s.departure
}

// OrderNumber returns the stop's position in its relation's sequence.
func (s *Stop) OrderNumber() int {
	return s.orderNumber
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	s.vehicleID = vehicleID
	return nil
}

func (s *Stop) setRelationID(relationID *kernel.UUID) error {
	if relationID == nil {
		return nil
	}
	if err := relationID.Validate(); err != nil {
		return err
	}
	s.relationID = relationID
	return nil
}

func (s *Stop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Stop) setArrival(arrival kernel.TimeOfDay) error {
	if err := arrival.Validate(); err != nil {
		return err
	}
	s.arrival = arrival
	return nil
}

func (s *Stop) setDeparture(departure kernel.TimeOfDay) error {
	if err := departure.Validate(); err != nil {
		return err
	}
	s.departure = departure
	return nil
}

func (s *Stop) setOrderNumber(orderNumber int) error {
	if orderNumber < 1 {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	s.orderNumber = orderNumber
	return nil
}
