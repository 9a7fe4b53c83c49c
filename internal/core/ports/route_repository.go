package ports

import (
	"context"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
)

// RouteRepository defines read access to the carrier-maintained route
// network: vehicles, relations, stops, and price lists. The engine only
// reads this data; carriers maintain it elsewhere.
type RouteRepository interface {
	// GetStopsByName retrieves every relation-assigned stop with the
	// given name, across all relations.
	GetStopsByName(ctx context.Context, name string) ([]*route.Stop, error)

	// GetRelationStops retrieves the relation's stop sequence ordered
	// by order number.
	GetRelationStops(ctx context.Context, relationID kernel.UUID) ([]*route.Stop, error)

	// GetRelation retrieves a relation by its identifier.
	GetRelation(ctx context.Context, id kernel.UUID) (*route.Relation, error)

	// GetRelationForUpdate retrieves a relation under a row lock held
	// until the surrounding transaction ends. Order creation takes this
	// lock to serialize capacity checks per relation.
	GetRelationForUpdate(ctx context.Context, id kernel.UUID) (*route.Relation, error)

	// GetVehicle retrieves a vehicle by its identifier.
	GetVehicle(ctx context.Context, id kernel.UUID) (*route.Vehicle, error)

	// GetPriceList retrieves the relation's price list, or nil when the
	// relation has none.
	GetPriceList(ctx context.Context, relationID kernel.UUID) (*route.PriceList, error)
}
