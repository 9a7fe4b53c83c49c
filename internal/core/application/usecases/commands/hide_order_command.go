package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

var ErrHideOrderCommandIsNotConstructed = errors.New(
	"HideOrderCommand must be created via NewHideOrderCommand constructor",
)

// HistoryParty identifies whose history view an order is hidden from.
type HistoryParty int

const (
	HistoryPartyUnknown HistoryParty = iota
	HistoryPartyUser
	HistoryPartyCarrier
)

// Validate rejects an unknown party.
func (p HistoryParty) Validate() error {
	if p != HistoryPartyUser && p != HistoryPartyCarrier {
		return errs.NewValueIsInvalidError("historyParty")
	}
	return nil
}

// HideOrderCommand represents one party removing a shipment from their
// own history view. The order itself, its status, and its status log
// are untouched.
type HideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	party   HistoryParty

	guard guard.ConstructorGuard
}

// NewHideOrderCommand creates a command to hide an order from one
// party's history.
func NewHideOrderCommand(orderID kernel.UUID, party HistoryParty) (HideOrderCommand, error) {
	cmd := HideOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParty(party),
	); err != nil {
		return HideOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HideOrderCommand) Validate() error {
	return c.guard.Validate(ErrHideOrderCommandIsNotConstructed)
}

// OrderID returns the shipment to hide.
func (c HideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Party returns whose view the shipment disappears from.
func (c HideOrderCommand) Party() HistoryParty {
	return c.party
}

func (c *HideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *HideOrderCommand) setParty(party HistoryParty) error {
	if err := party.Validate(); err != nil {
		return err
	}

	c.party = party
	return nil
}
