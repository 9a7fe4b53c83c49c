package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStartStopIsRequired = errors.New("start stop is required")
	ErrEndStopIsRequired   = errors.New("end stop is required")
	ErrPriceIsInvalid      = errors.New("price must not be negative")
)

// CreateOrderCommand represents a request to book a shipment on a
// course previously returned by the availability search. The price is
// the offer price; it is stored on the order as-is and never
// recomputed.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	relationID   kernel.UUID
	size         shipment.Size
	startStop    string
	endStop      string
	price        float64
	deliverToday bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book a shipment.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	relationID kernel.UUID,
	size shipment.Size,
	startStop string,
	endStop string,
	price float64,
	deliverToday bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliverToday: deliverToday,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRelationID(relationID),
		cmd.setSize(size),
		cmd.setStops(startStop, endStop),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the booking customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RelationID returns the relation the course runs on.
func (c CreateOrderCommand) RelationID() kernel.UUID {
	return c.relationID
}

// Size returns the shipment size class.
func (c CreateOrderCommand) Size() shipment.Size {
	return c.size
}

// StartStop returns the boarding stop name.
func (c CreateOrderCommand) StartStop() string {
	return c.startStop
}

// EndStop returns the destination stop name.
func (c CreateOrderCommand) EndStop() string {
	return c.endStop
}

// Price returns the offer price to debit from the customer.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

// DeliverToday reports whether the course runs today rather than
// tomorrow.
func (c CreateOrderCommand) DeliverToday() bool {
	return c.deliverToday
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRelationID(relationID kernel.UUID) error {
	if err := relationID.Validate(); err != nil {
		return err
	}

	c.relationID = relationID
	return nil
}

func (c *CreateOrderCommand) setSize(size shipment.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *CreateOrderCommand) setStops(startStop, endStop string) error {
	if startStop == "" {
		return ErrStartStopIsRequired
	}
	if endStop == "" {
		return ErrEndStopIsRequired
	}

	c.startStop = startStop
	c.endStop = endStop
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
