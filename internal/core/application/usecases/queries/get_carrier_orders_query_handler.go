package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCarrierOrdersQueryHandler reads a carrier's visible order history.
// Orders reach a carrier through its vehicles' relations.
type GetCarrierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierOrdersQueryHandler creates a handler for carrier order
// history.
func NewGetCarrierOrdersQueryHandler(db *gorm.DB) GetCarrierOrdersQueryHandler {
	return GetCarrierOrdersQueryHandler{db: db}
}

// Handle executes the query, newest departures first.
func (h GetCarrierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			o.status,
			o.size,
			o.start_stop,
			o.end_stop,
			o.departure,
			o.arrival,
			o.price
		FROM orders o
		JOIN relations r ON r.id = o.relation_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE v.owner_id = ?
		  AND o.deleted_by_carrier = false
		ORDER BY o.departure DESC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
