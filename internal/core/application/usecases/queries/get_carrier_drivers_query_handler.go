package queries

import (
	"context"

	"couriernet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierDriversQueryHandler reads a carrier's driver roster
// straight from the read connection.
type GetCarrierDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierDriversQueryHandler creates a handler for carrier driver
// listings.
func NewGetCarrierDriversQueryHandler(db *gorm.DB) GetCarrierDriversQueryHandler {
	return GetCarrierDriversQueryHandler{db: db}
}

// Handle executes the query ordered by surname.
func (h GetCarrierDriversQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierDriversQuery,
) ([]DriverSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			id_code,
			pin_code
		FROM drivers
		WHERE owner_id = ?
		ORDER BY last_name ASC, first_name ASC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]DriverSummaryResponse, 0)
	for rows.Next() {
		var summary DriverSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.FirstName,
			&summary.LastName,
			&summary.IDCode,
			&summary.PinCode,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = driverID
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
