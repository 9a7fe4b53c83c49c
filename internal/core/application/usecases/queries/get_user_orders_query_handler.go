package queries

import (
	"context"
	"database/sql"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's visible order history
// straight from the read connection.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer order
// history.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query, newest departures first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_code,
			status,
			size,
			start_stop,
			end_stop,
			departure,
			arrival,
			price
		FROM orders
		WHERE customer_id = ?
		  AND deleted_by_user = false
		ORDER BY departure DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var status, size int

		err := rows.Scan(
			&id,
			&summary.OrderCode,
			&status,
			&size,
			&summary.StartStop,
			&summary.EndStop,
			&summary.Departure,
			&summary.Arrival,
			&summary.Price,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.Status = shipment.Status(status).String()
		summary.Size = shipment.Size(size).String()
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
