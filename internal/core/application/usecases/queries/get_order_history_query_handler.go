package queries

import (
	"context"

	"couriernet/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's status log.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for status log
// reads.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query, oldest change first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY changed_at ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var change GetOrderHistoryQueryResponse
		var status int

		if err = rows.Scan(&status, &change.ChangedAt); err != nil {
			return nil, err
		}

		change.Status = shipment.Status(status).String()
		changes = append(changes, change)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return changes, nil
}
