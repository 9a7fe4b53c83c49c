package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/ports"
	"couriernet/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves the public tracking lookup through a
// read-through cache. Tracking is by far the hottest read and tolerates
// a short staleness window; a cache failure degrades to the database,
// never to an error.
type TrackShipmentQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
	log   *slog.Logger
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
func NewTrackShipmentQueryHandler(db *gorm.DB, cache ports.TrackingCache, log *slog.Logger) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db, cache: cache, log: log}
}

// Handle resolves the tracking snapshot, consulting the cache first.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (*ports.TrackingSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, err := h.cache.Get(ctx, query.OrderCode()); err != nil {
		h.log.WarnContext(ctx, "tracking cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	snapshot, err := h.loadSnapshot(ctx, query.OrderCode())
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, snapshot); err != nil {
		h.log.WarnContext(ctx, "tracking cache write failed", "error", err)
	}

	return snapshot, nil
}

func (h TrackShipmentQueryHandler) loadSnapshot(ctx context.Context, orderCode string) (*ports.TrackingSnapshot, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_code,
			status,
			start_stop,
			end_stop,
			departure,
			arrival
		FROM orders
		WHERE order_code = ?
	`, orderCode).Row()

	snapshot := &ports.TrackingSnapshot{}
	var status int

	err := row.Scan(
		&snapshot.OrderCode,
		&status,
		&snapshot.StartStop,
		&snapshot.EndStop,
		&snapshot.Departure,
		&snapshot.Arrival,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderCode)
	}
	if err != nil {
		return nil, err
	}

	snapshot.Status = shipment.Status(status).String()
	snapshot.UpdatedAt = time.Now()
	return snapshot, nil
}
