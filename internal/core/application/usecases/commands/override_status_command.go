package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand represents an operator manually moving an
// intervention shipment back to an operational status once the problem
// is resolved.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  shipment.Status

	guard guard.ConstructorGuard
}

// NewOverrideStatusCommand creates a command to override an
// intervention status.
func NewOverrideStatusCommand(orderID kernel.UUID, status shipment.Status) (OverrideStatusCommand, error) {
	cmd := OverrideStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return OverrideStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

// OrderID returns the shipment to override.
func (c OverrideStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target operational status.
func (c OverrideStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *OverrideStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
