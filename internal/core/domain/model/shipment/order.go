package shipment

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of a booked shipment. It owns the
// canonical lifecycle status, the verification codes, the price fixed
// at creation, and the two per-party soft-delete flags.
//
// Invariants:
//   - The price is fixed at creation and never recomputed.
//   - The order code is a globally unique 14-digit string.
//   - Verification codes hold the "0000" sentinel until a driver is
//     assigned, and are regenerated on every assignment.
//   - Status only changes through the transition methods below; every
//     successful transition is recorded by the caller as exactly one
//     status-history row in the same transaction.
//   - Soft deletion never touches status or history.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	relationID   kernel.UUID
	driverID     *kernel.UUID
	size         Size
	startStop    string
	endStop      string
	departure    time.Time
	arrival      time.Time
	price        float64
	orderCode    string
	pickupCode   string
	deliveryCode string
	status       Status

	deletedByUser    bool
	deletedByCarrier bool

	isConstructed bool
}

// NewOrder creates a freshly booked shipment in status Nadana with both
// verification codes set to the sentinel. The order code must be a
// 14-digit string already checked for uniqueness by the caller.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	relationID kernel.UUID,
	size Size,
	startStop string,
	endStop string,
	departure time.Time,
	arrival time.Time,
	price float64,
	orderCode string,
) (*Order, error) {
	o := &Order{
		status:        StatusNadana,
		pickupCode:    SentinelVerificationCode,
		deliveryCode:  SentinelVerificationCode,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRelationID(relationID),
		o.setSize(size),
		o.setStops(startStop, endStop),
		o.setTimes(departure, arrival),
		o.setPrice(price),
		o.setOrderCode(orderCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	relationID kernel.UUID,
	driverID *kernel.UUID,
	size Size,
	startStop string,
	endStop string,
	departure time.Time,
	arrival time.Time,
	price float64,
	orderCode string,
	pickupCode string,
	deliveryCode string,
	status Status,
	deletedByUser bool,
	deletedByCarrier bool,
) (*Order, error) {
	o, err := NewOrder(id, customerID, relationID, size, startStop, endStop, departure, arrival, price, orderCode)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}
	if !isDigits(pickupCode) || len(pickupCode) != VerificationCodeLength {
		return nil, errs.NewValueIsInvalidError("pickupCode")
	}
	if !isDigits(deliveryCode) || len(deliveryCode) != VerificationCodeLength {
		return nil, errs.NewValueIsInvalidError("deliveryCode")
	}

	o.status = status
	o.pickupCode = pickupCode
	o.deliveryCode = deliveryCode
	o.deletedByUser = deletedByUser
	o.deletedByCarrier = deletedByCarrier
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the booking customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// RelationID returns the relation the shipment travels on.
func (o *Order) RelationID() kernel.UUID { return o.relationID }

// DriverID returns the assigned driver, or nil before assignment.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// Size returns the shipment size class.
func (o *Order) Size() Size { return o.size }

// StartStop returns the boarding stop name.
func (o *Order) StartStop() string { return o.startStop }

// EndStop returns the destination stop name.
func (o *Order) EndStop() string { return o.endStop }

// Departure returns the computed departure timestamp.
func (o *Order) Departure() time.Time { return o.departure }

// Arrival returns the computed arrival timestamp.
func (o *Order) Arrival() time.Time { return o.arrival }

// Price returns the price fixed at creation.
func (o *Order) Price() float64 { return o.price }

// OrderCode returns the globally unique 14-digit shipment code.
func (o *Order) OrderCode() string { return o.orderCode }

// PickupCode returns the current pickup verification code.
func (o *Order) PickupCode() string { return o.pickupCode }

// DeliveryCode returns the current delivery verification code.
func (o *Order) DeliveryCode() string { return o.deliveryCode }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// DeletedByUser reports whether the customer hid the order from their
// history.
func (o *Order) DeletedByUser() bool { return o.deletedByUser }

// DeletedByCarrier reports whether the carrier hid the order from their
// history.
func (o *Order) DeletedByCarrier() bool { return o.deletedByCarrier }

// AssignDriver assigns the order to a driver and installs fresh
// verification codes. Both codes must be 4-digit strings; they are
// regenerated on every assignment, invalidating any previously issued
// codes.
func (o *Order) AssignDriver(driverID kernel.UUID, pickupCode, deliveryCode string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !isDigits(pickupCode) || len(pickupCode) != VerificationCodeLength {
		return errs.NewValueIsInvalidError("pickupCode")
	}
	if !isDigits(deliveryCode) || len(deliveryCode) != VerificationCodeLength {
		return errs.NewValueIsInvalidError("deliveryCode")
	}

	newStatus, err := o.status.AssignDriver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.pickupCode = pickupCode
	o.deliveryCode = deliveryCode
	return nil
}

// AcceptPickup records the driver collecting the parcel. The supplied
// code must match the stored pickup code exactly and the order must be
// in Przypisano kierowcę.
func (o *Order) AcceptPickup(pickupCode string) error {
	if pickupCode != o.pickupCode {
		return ErrInvalidCode
	}

	newStatus, err := o.status.AcceptPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery records the parcel reaching the customer. The
// supplied code must match the stored delivery code exactly and the
// order must be in Przyjęta od klienta. The carrier wallet credit is
// the calling use case's responsibility, in the same transaction.
func (o *Order) ConfirmDelivery(deliveryCode string) error {
	if deliveryCode != o.deliveryCode {
		return ErrInvalidCode
	}

	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Intervene forces the order into Interwencja following a problem
// report. Permitted from any non-terminal status.
func (o *Order) Intervene() error {
	newStatus, err := o.status.Intervene()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// OverrideStatus manually moves an intervention order back to an
// operational status. This is the generic status-update path and is
// only permitted while the order sits in Interwencja.
func (o *Order) OverrideStatus(to Status) error {
	newStatus, err := o.status.Override(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDeletedByUser hides the order from the customer's history. Status
// and history are untouched.
func (o *Order) MarkDeletedByUser() {
	o.deletedByUser = true
}

// MarkDeletedByCarrier hides the order from the carrier's history.
// Status and history are untouched.
func (o *Order) MarkDeletedByCarrier() {
	o.deletedByCarrier = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRelationID(relationID kernel.UUID) error {
	if err := relationID.Validate(); err != nil {
		return err
	}
	o.relationID = relationID
	return nil
}

func (o *Order) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

func (o *Order) setStops(startStop, endStop string) error {
	if startStop == "" {
		return errs.NewValueIsRequiredError("startStop")
	}
	if endStop == "" {
		return errs.NewValueIsRequiredError("endStop")
	}
	o.startStop = startStop
	o.endStop = endStop
	return nil
}

func (o *Order) setTimes(departure, arrival time.Time) error {
	if departure.IsZero() {
		return errs.NewValueIsRequiredError("departure")
	}
	if arrival.IsZero() {
		return errs.NewValueIsRequiredError("arrival")
	}
	o.departure = departure
	o.arrival = arrival
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	o.price = price
	return nil
}

func (o *Order) setOrderCode(orderCode string) error {
	if !isDigits(orderCode) || len(orderCode) != OrderCodeLength {
		return errs.NewValueIsInvalidError("orderCode")
	}
	o.orderCode = orderCode
	return nil
}
