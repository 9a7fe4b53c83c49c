package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a carrier assigning one of its drivers
// to a booked shipment.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
func NewAssignDriverCommand(orderID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the shipment to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
