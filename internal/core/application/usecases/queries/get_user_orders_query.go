package queries

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves a customer's order history. Orders the
// customer removed from their view stay persisted but are filtered out
// here.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's order history.
func NewGetUserOrdersQuery(customerID kernel.UUID) (GetUserOrdersQuery, error) {
	q := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetUserOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetUserOrdersQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// OrderSummaryResponse is one row of an order history view.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	OrderCode string
	Status    string
	Size      string
	StartStop string
	EndStop   string
	Departure time.Time
	Arrival   time.Time
	Price     float64
}
