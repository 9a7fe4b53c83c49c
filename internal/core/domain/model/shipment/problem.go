package shipment

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrProblemIsNotConstructed is returned when a Problem was not created
// through NewProblem or RestoreProblem.
var ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem or RestoreProblem")

// Problem is a customer-raised intervention ticket on an order. Filing
// one forces the order into Interwencja; the ticket itself carries only
// the customer's description.
type Problem struct {
	id          kernel.UUID
	orderID     kernel.UUID
	customerID  kernel.UUID
	description string
	reportedAt  time.Time

	isConstructed bool
}

// NewProblem creates an intervention ticket. The description may be
// empty; the customer is not forced to explain.
func NewProblem(id kernel.UUID, orderID kernel.UUID, customerID kernel.UUID, description string, reportedAt time.Time) (*Problem, error) {
	p := &Problem{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if reportedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("reportedAt")
	}

	p.id = id
	p.orderID = orderID
	p.customerID = customerID
	p.description = description
	p.reportedAt = reportedAt
	return p, nil
}

// RestoreProblem rebuilds a ticket from persistence.
func RestoreProblem(id kernel.UUID, orderID kernel.UUID, customerID kernel.UUID, description string, reportedAt time.Time) (*Problem, error) {
	return NewProblem(id, orderID, customerID, description, reportedAt)
}

// Validate ensures the ticket came from a constructor.
func (p *Problem) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProblemIsNotConstructed
	}
	return nil
}

// ID returns the ticket identifier.
func (p *Problem) ID() kernel.UUID { return p.id }

// OrderID returns the order the ticket complains about.
func (p *Problem) OrderID() kernel.UUID { return p.orderID }

// CustomerID returns the reporting customer.
func (p *Problem) CustomerID() kernel.UUID { return p.customerID }

// Description returns the customer's free-text description.
func (p *Problem) Description() string { return p.description }

// ReportedAt returns when the ticket was filed.
func (p *Problem) ReportedAt() time.Time { return p.reportedAt }
