package ports

import (
	"context"
	"time"
)

// TrackingSnapshot is the cached public view of a shipment, served to
// anonymous tracking lookups by order code.
type TrackingSnapshot struct {
	OrderCode string    `json:"orderCode"`
	Status    string    `json:"status"`
	StartStop string    `json:"startStop"`
	EndStop   string    `json:"endStop"`
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrackingCache is a read-through cache in front of the tracking query.
// A miss returns (nil, nil).
type TrackingCache interface {
	// Get retrieves the cached snapshot for an order code.
	Get(ctx context.Context, orderCode string) (*TrackingSnapshot, error)

	// Set stores a snapshot with the cache's configured TTL.
	Set(ctx context.Context, snapshot *TrackingSnapshot) error

	// Invalidate drops the snapshot after a status change.
	Invalidate(ctx context.Context, orderCode string) error
}
