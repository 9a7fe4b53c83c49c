package queries

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/services"
	"couriernet/internal/core/ports"
)

// SearchStore is the read access the availability search needs. A
// single snapshot connection serves it; the search takes no locks and
// tolerates being slightly stale, the booking path re-checks capacity
// authoritatively.
type SearchStore interface {
	RouteRepository() ports.RouteRepository
	OrderRepository() ports.OrderRepository
}

// GetAvailableCoursesQueryHandler runs the availability search: it
// gathers every relation passing through the start stop and lets the
// course finder match, filter, and price the candidates.
type GetAvailableCoursesQueryHandler struct {
	store  SearchStore
	finder services.CourseFinder
}

// NewGetAvailableCoursesQueryHandler creates a handler for the
// availability search.
func NewGetAvailableCoursesQueryHandler(store SearchStore) GetAvailableCoursesQueryHandler {
	return GetAvailableCoursesQueryHandler{
		store:  store,
		finder: services.NewCourseFinder(),
	}
}

// Handle executes the search. No matches yield an empty slice.
func (h GetAvailableCoursesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCoursesQuery,
) ([]GetAvailableCoursesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	targetDate := now
	if !query.DeliverToday() {
		targetDate = now.AddDate(0, 0, 1)
	}

	candidates, err := h.collectCandidates(ctx, query.StartStop(), targetDate)
	if err != nil {
		return nil, err
	}

	courses, err := h.finder.FindCourses(
		candidates, query.StartStop(), query.EndStop(), query.Size(), query.DeliverToday(), now,
	)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableCoursesQueryResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, GetAvailableCoursesQueryResponse{
			RelationID:    course.Relation.ID(),
			VehicleID:     course.Vehicle.ID(),
			CarrierID:     course.Vehicle.OwnerID(),
			RelationName:  course.Relation.Name(),
			StartStop:     course.StartStop.Name(),
			EndStop:       course.EndStop.Name(),
			DepartureTime: course.StartStop.Departure().String(),
			ArrivalTime:   course.EndStop.Arrival().String(),
			TotalPrice:    course.Price,
		})
	}

	return responses, nil
}

// collectCandidates builds one candidate per distinct relation passing
// through the start stop.
func (h GetAvailableCoursesQueryHandler) collectCandidates(
	ctx context.Context,
	startStop string,
	targetDate time.Time,
) ([]services.RelationCandidate, error) {
	routeRepo := h.store.RouteRepository()
	orderRepo := h.store.OrderRepository()

	startStops, err := routeRepo.GetStopsByName(ctx, startStop)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]bool)
	candidates := make([]services.RelationCandidate, 0, len(startStops))
	for _, stop := range startStops {
		if !stop.IsAssigned() || seen[*stop.RelationID()] {
			continue
		}
		seen[*stop.RelationID()] = true

		relation, err := routeRepo.GetRelation(ctx, *stop.RelationID())
		if err != nil {
			return nil, err
		}
		vehicle, err := routeRepo.GetVehicle(ctx, relation.VehicleID())
		if err != nil {
			return nil, err
		}
		stops, err := routeRepo.GetRelationStops(ctx, relation.ID())
		if err != nil {
			return nil, err
		}
		priceList, err := routeRepo.GetPriceList(ctx, relation.ID())
		if err != nil {
			return nil, err
		}
		activeOrders, err := orderRepo.GetActiveByRelationAndDate(ctx, relation.ID(), targetDate)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, services.RelationCandidate{
			Relation:     relation,
			Vehicle:      vehicle,
			PriceList:    priceList,
			Stops:        stops,
			UsedCapacity: h.finder.ActiveCapacity(activeOrders),
		})
	}

	return candidates, nil
}
