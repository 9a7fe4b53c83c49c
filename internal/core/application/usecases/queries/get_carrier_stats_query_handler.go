package queries

import (
	"context"

	"couriernet/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetCarrierStatsQueryHandler aggregates a carrier's shipment counters
// in a single pass over its orders.
type GetCarrierStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierStatsQueryHandler creates a handler for carrier
// statistics.
func NewGetCarrierStatsQueryHandler(db *gorm.DB) GetCarrierStatsQueryHandler {
	return GetCarrierStatsQueryHandler{db: db}
}

// Handle executes the aggregation. Earnings stay unset; see the
// response type.
func (h GetCarrierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierStatsQuery,
) (GetCarrierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			COUNT(*)
		FROM orders o
		JOIN relations r ON r.id = o.relation_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE v.owner_id = ?
		GROUP BY o.status
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetCarrierStatsQueryResponse
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetCarrierStatsQueryResponse{}, err
		}

		stats.TotalOrders += count
		switch {
		case shipment.Status(status).IsActive():
			stats.ActiveOrders += count
		case shipment.Status(status) == shipment.StatusDostarczona:
			stats.DeliveredOrders += count
		case shipment.Status(status) == shipment.StatusInterwencja:
			stats.Interventions += count
		}
	}

	if err = rows.Err(); err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}

	return stats, nil
}
