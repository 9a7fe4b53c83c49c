package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetChangedOrderCodesQueryHandler reads recently changed order codes
// straight from the read connection.
type GetChangedOrderCodesQueryHandler struct {
	db *gorm.DB
}

// NewGetChangedOrderCodesQueryHandler creates a handler for the
// tracking sweep.
func NewGetChangedOrderCodesQueryHandler(db *gorm.DB) GetChangedOrderCodesQueryHandler {
	return GetChangedOrderCodesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetChangedOrderCodesQueryHandler) Handle(
	ctx context.Context,
	query GetChangedOrderCodesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT o.order_code
		FROM orders o
		JOIN order_status_changes c ON c.order_id = o.id
		WHERE c.changed_at > ?
	`, query.Since()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err = rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}
