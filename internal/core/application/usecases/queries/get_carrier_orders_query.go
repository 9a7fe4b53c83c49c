package queries

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrGetCarrierOrdersQueryIsNotConstructed = errors.New(
	"GetCarrierOrdersQuery must be created via NewGetCarrierOrdersQuery constructor",
)

// GetCarrierOrdersQuery retrieves the order history of a carrier: every
// order booked on relations of the carrier's vehicles, minus those the
// carrier hid from its view.
type GetCarrierOrdersQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierOrdersQuery creates a query for a carrier's order
// history.
func NewGetCarrierOrdersQuery(carrierID kernel.UUID) (GetCarrierOrdersQuery, error) {
	q := GetCarrierOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCarrierID(carrierID); err != nil {
		return GetCarrierOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierOrdersQueryIsNotConstructed)
}

// CarrierID returns the carrier whose history is requested.
func (q GetCarrierOrdersQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q *GetCarrierOrdersQuery) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	q.carrierID = carrierID
	return nil
}
