package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrReportProblemCommandIsNotConstructed = errors.New(
	"ReportProblemCommand must be created via NewReportProblemCommand constructor",
)

// ReportProblemCommand represents a customer raising an intervention
// ticket on a shipment. The description may be empty.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to report a shipment
// problem.
func NewReportProblemCommand(orderID, customerID kernel.UUID, description string) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// OrderID returns the shipment the problem concerns.
func (c ReportProblemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the reporting customer.
func (c ReportProblemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Description returns the customer's free-text description.
func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportProblemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
