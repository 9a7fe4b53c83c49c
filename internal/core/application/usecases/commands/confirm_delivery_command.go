package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a driver handing the parcel to the
// customer, proven by the customer's delivery code.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderCode    string
	deliveryCode string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to record a delivery.
func NewConfirmDeliveryCommand(orderCode, deliveryCode string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderCode(orderCode),
		cmd.setDeliveryCode(deliveryCode),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderCode returns the 14-digit shipment code.
func (c ConfirmDeliveryCommand) OrderCode() string {
	return c.orderCode
}

// DeliveryCode returns the 4-digit code supplied by the driver.
func (c ConfirmDeliveryCommand) DeliveryCode() string {
	return c.deliveryCode
}

func (c *ConfirmDeliveryCommand) setOrderCode(orderCode string) error {
	if len(orderCode) != shipment.OrderCodeLength {
		return errs.NewValueIsInvalidError("orderCode")
	}

	c.orderCode = orderCode
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveryCode(deliveryCode string) error {
	if len(deliveryCode) != shipment.VerificationCodeLength {
		return errs.NewValueIsInvalidError("deliveryCode")
	}

	c.deliveryCode = deliveryCode
	return nil
}
