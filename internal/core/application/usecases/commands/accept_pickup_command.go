package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

var ErrAcceptPickupCommandIsNotConstructed = errors.New(
	"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
)

// AcceptPickupCommand represents a driver collecting a parcel from the
// customer. The driver identifies the shipment by its 14-digit order
// code and proves the handover with the customer's pickup code.
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	orderCode  string
	pickupCode string

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand creates a command to record a pickup.
func NewAcceptPickupCommand(orderCode, pickupCode string) (AcceptPickupCommand, error) {
	cmd := AcceptPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setPickupCode(pickupCode),
	); err != nil {
		return AcceptPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// OrderCode returns the 14-digit shipment code.
func (c AcceptPickupCommand) OrderCode() string {
	return c.orderCode
}

// PickupCode returns the 4-digit code supplied by the driver.
func (c AcceptPickupCommand) PickupCode() string {
	return c.pickupCode
}

func (c *AcceptPickupCommand) setOrderCode(orderCode string) error {
	if len(orderCode) != shipment.OrderCodeLength {
		return errs.NewValueIsInvalidError("orderCode")
	}

	c.orderCode = orderCode
	return nil
}

func (c *AcceptPickupCommand) setPickupCode(pickupCode string) error {
	if len(pickupCode) != shipment.VerificationCodeLength {
		return errs.NewValueIsInvalidError("pickupCode")
	}

	c.pickupCode = pickupCode
	return nil
}
