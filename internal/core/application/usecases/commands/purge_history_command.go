package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrPurgeHistoryCommandIsNotConstructed = errors.New(
	"PurgeHistoryCommand must be created via NewPurgeHistoryCommand constructor",
)

// PurgeHistoryCommand represents an administrative wipe of one order's
// entire status history. This is the only path that ever deletes
// history rows.
type PurgeHistoryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPurgeHistoryCommand creates a command to purge an order's history.
func NewPurgeHistoryCommand(orderID kernel.UUID) (PurgeHistoryCommand, error) {
	cmd := PurgeHistoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PurgeHistoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeHistoryCommand) Validate() error {
	return c.guard.Validate(ErrPurgeHistoryCommandIsNotConstructed)
}

// OrderID returns the order whose history is purged.
func (c PurgeHistoryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PurgeHistoryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
