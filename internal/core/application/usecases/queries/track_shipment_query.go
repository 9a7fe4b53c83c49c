package queries

import (
	"errors"

	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery is the anonymous tracking lookup: anyone holding
// the 14-digit order code can see where the shipment stands.
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	orderCode string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query.
func NewTrackShipmentQuery(orderCode string) (TrackShipmentQuery, error) {
	q := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderCode(orderCode); err != nil {
		return TrackShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// OrderCode returns the 14-digit shipment code.
func (q TrackShipmentQuery) OrderCode() string {
	return q.orderCode
}

func (q *TrackShipmentQuery) setOrderCode(orderCode string) error {
	if len(orderCode) != shipment.OrderCodeLength {
		return errs.NewValueIsInvalidError("orderCode")
	}

	q.orderCode = orderCode
	return nil
}
