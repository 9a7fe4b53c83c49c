package queries

import (
	"context"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenInterventionsQueryHandler reads intervention orders straight
// from the read connection. Since is the moment the order entered the
// intervention state, taken from the status history.
type GetOpenInterventionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenInterventionsQueryHandler creates a handler for the
// intervention watch.
func NewGetOpenInterventionsQueryHandler(db *gorm.DB) GetOpenInterventionsQueryHandler {
	return GetOpenInterventionsQueryHandler{db: db}
}

// Handle executes the query, oldest interventions first.
func (h GetOpenInterventionsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenInterventionsQuery,
) ([]OpenInterventionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			MAX(c.changed_at) AS since
		FROM orders o
		JOIN order_status_changes c ON c.order_id = o.id
		WHERE o.status = ?
		  AND c.status = ?
		GROUP BY o.id, o.order_code
		ORDER BY since ASC
	`, int(shipment.StatusInterwencja), int(shipment.StatusInterwencja)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interventions := make([]OpenInterventionResponse, 0)
	for rows.Next() {
		var entry OpenInterventionResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.OrderCode, &entry.Since); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = orderID
		interventions = append(interventions, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return interventions, nil
}
