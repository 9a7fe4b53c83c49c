package queries

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var ErrGetCarrierStatsQueryIsNotConstructed = errors.New(
	"GetCarrierStatsQuery must be created via NewGetCarrierStatsQuery constructor",
)

// GetCarrierStatsQuery retrieves aggregate shipment counts for one
// carrier across all of its vehicles.
type GetCarrierStatsQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierStatsQuery creates a carrier statistics query.
func NewGetCarrierStatsQuery(carrierID kernel.UUID) (GetCarrierStatsQuery, error) {
	q := GetCarrierStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCarrierID(carrierID); err != nil {
		return GetCarrierStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierStatsQueryIsNotConstructed)
}

// CarrierID returns the carrier the statistics cover.
func (q GetCarrierStatsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q *GetCarrierStatsQuery) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	q.carrierID = carrierID
	return nil
}

// GetCarrierStatsQueryResponse holds the carrier's shipment counters.
// TotalEarnings is deliberately not computed; EarningsComputed stays
// false until an earnings formula is agreed with billing.
type GetCarrierStatsQueryResponse struct {
	TotalOrders      int
	ActiveOrders     int
	DeliveredOrders  int
	Interventions    int
	TotalEarnings    float64
	EarningsComputed bool
}
