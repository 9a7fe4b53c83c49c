package shipment

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was
// not created through NewStatusChange or RestoreStatusChange.
var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange or RestoreStatusChange")

// StatusChange is one row of an order's append-only status history.
// Rows are written in the same transaction as the status mutation they
// record and are never updated; the only sanctioned removal is the
// explicit purge of an order's entire history.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	changedAt time.Time

	isConstructed bool
}

// NewStatusChange records a status the given order just entered.
func NewStatusChange(id kernel.UUID, orderID kernel.UUID, status Status, changedAt time.Time) (*StatusChange, error) {
	c := &StatusChange{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if changedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("changedAt")
	}

	c.id = id
	c.orderID = orderID
	c.status = status
	c.changedAt = changedAt
	return c, nil
}

// RestoreStatusChange rebuilds a history row from persistence.
func RestoreStatusChange(id kernel.UUID, orderID kernel.UUID, status Status, changedAt time.Time) (*StatusChange, error) {
	return NewStatusChange(id, orderID, status, changedAt)
}

// Validate ensures the entry came from a constructor.
func (c *StatusChange) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// ID returns the history row identifier.
func (c *StatusChange) ID() kernel.UUID { return c.id }

// OrderID returns the order this row belongs to.
func (c *StatusChange) OrderID() kernel.UUID { return c.orderID }

// Status returns the status the order entered.
func (c *StatusChange) Status() Status { return c.status }

// ChangedAt returns when the transition happened.
func (c *StatusChange) ChangedAt() time.Time { return c.changedAt }
