package services_test

import (
	"testing"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type candidateBuilder struct {
	t         *testing.T
	relation  *route.Relation
	vehicle   *route.Vehicle
	priceList *route.PriceList
	stops     []*route.Stop
}

func newCandidate(t *testing.T, capacity int) *candidateBuilder {
	t.Helper()

	vehicle, err := route.NewVehicle(kernel.NewUUID(), "Sprinter", capacity, "WA 12345", kernel.NewUUID())
	require.NoError(t, err)

	relation, err := route.NewRelation(kernel.NewUUID(), "Warszawa-Radom", vehicle.ID())
	require.NoError(t, err)

	return &candidateBuilder{t: t, relation: relation, vehicle: vehicle}
}

func (b *candidateBuilder) withPriceList(basePrice, pricePerStop float64) *candidateBuilder {
	priceList, err := route.NewPriceList(b.relation.ID(), basePrice, pricePerStop)
	require.NoError(b.t, err)
	b.priceList = priceList
	return b
}

func (b *candidateBuilder) withStop(name string, departure string, orderNumber int) *candidateBuilder {
	dep, err := kernel.ParseTimeOfDay(departure)
	require.NoError(b.t, err)

	relationID := b.relation.ID()
	stop, err := route.NewStop(kernel.NewUUID(), b.vehicle.ID(), &relationID, name, dep, dep, orderNumber)
	require.NoError(b.t, err)
	b.stops = append(b.stops, stop)
	return b
}

func (b *candidateBuilder) build(usedCapacity int) services.RelationCandidate {
	return services.RelationCandidate{
		Relation:     b.relation,
		Vehicle:      b.vehicle,
		PriceList:    b.priceList,
		Stops:        b.stops,
		UsedCapacity: usedCapacity,
	}
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	tod, err := kernel.ParseTimeOfDay(clock)
	require.NoError(t, err)
	return tod.On(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
}

func TestCourseFinder_FindCourses(t *testing.T) {
	finder := services.NewCourseFinder()

	t.Run("matches_forward_segment_and_prices_it", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withPriceList(10, 2.5).
			withStop("X", "10:00", 1).
			withStop("Y", "11:00", 2).
			withStop("Z", "12:00", 3).
			build(0)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, true, at(t, "07:00"),
		)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "X", courses[0].StartStop.Name())
		assert.Equal(t, "Z", courses[0].EndStop.Name())
		assert.InDelta(t, 15, courses[0].Price, 1e-9) // 10 + 2.5*2
		assert.Equal(t, 10, courses[0].Departure.Hour())
		assert.Equal(t, 12, courses[0].Arrival.Hour())
	})

	t.Run("no_backward_matching", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("Z", "12:00", 2).
			build(0)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"Z", "X", shipment.SizeS, false, at(t, "07:00"),
		)

		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("first_end_stop_occurrence_wins", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("Z", "11:00", 2).
			withStop("Z", "13:00", 3).
			build(0)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, false, at(t, "07:00"),
		)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, 2, courses[0].EndStop.OrderNumber())
	})

	t.Run("multiple_start_occurrences_yield_multiple_courses", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("X", "11:00", 2).
			withStop("Z", "12:00", 3).
			build(0)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, false, at(t, "07:00"),
		)

		require.NoError(t, err)
		assert.Len(t, courses, 2)
	})

	t.Run("same_day_cutoff", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("Z", "12:00", 2).
			build(0)

		// 08:30 now, 10:00 departure: 90 minutes of lead is too little.
		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, true, at(t, "08:30"),
		)
		require.NoError(t, err)
		assert.Empty(t, courses)

		// Exactly two hours of lead passes.
		courses, err = finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, true, at(t, "08:00"),
		)
		require.NoError(t, err)
		assert.Len(t, courses, 1)
	})

	t.Run("tomorrow_ignores_cutoff", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("Z", "12:00", 2).
			build(0)

		now := at(t, "09:45")
		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, false, now,
		)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, now.Day()+1, courses[0].Departure.Day())
	})

	t.Run("missing_price_list_means_free", func(t *testing.T) {
		candidate := newCandidate(t, 10).
			withStop("X", "10:00", 1).
			withStop("Z", "12:00", 2).
			build(0)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeM, false, at(t, "07:00"),
		)

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Zero(t, courses[0].Price)
	})

	t.Run("capacity_filter_rejects_overweight_request", func(t *testing.T) {
		// Vehicle capacity 3 with two active S orders booked: an M
		// request would need 2+2 > 3 even though the cutoff passes.
		candidate := newCandidate(t, 3).
			withStop("X", "10:00", 1).
			withStop("Y", "11:00", 2).
			withStop("Z", "12:00", 3).
			build(2)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeM, true, at(t, "07:00"),
		)

		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("capacity_filter_admits_exact_fit", func(t *testing.T) {
		candidate := newCandidate(t, 3).
			withStop("X", "10:00", 1).
			withStop("Y", "11:00", 2).
			withStop("Z", "12:00", 3).
			build(2)

		courses, err := finder.FindCourses(
			[]services.RelationCandidate{candidate},
			"X", "Z", shipment.SizeS, true, at(t, "07:00"),
		)

		require.NoError(t, err)
		assert.Len(t, courses, 1)
	})

	t.Run("no_matches_is_empty_not_error", func(t *testing.T) {
		courses, err := finder.FindCourses(nil, "X", "Z", shipment.SizeS, false, at(t, "07:00"))

		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}

func TestCourseFinder_ActiveCapacity(t *testing.T) {
	finder := services.NewCourseFinder()

	departure := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	makeOrder := func(size shipment.Size) *shipment.Order {
		o, err := shipment.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			size, "X", "Z", departure, departure.Add(time.Hour), 10, "12345678901234",
		)
		require.NoError(t, err)
		return o
	}

	delivered := makeOrder(shipment.SizeL)
	require.NoError(t, delivered.AssignDriver(kernel.NewUUID(), "1111", "2222"))
	require.NoError(t, delivered.AcceptPickup("1111"))
	require.NoError(t, delivered.ConfirmDelivery("2222"))

	intervention := makeOrder(shipment.SizeL)
	require.NoError(t, intervention.Intervene())

	used := finder.ActiveCapacity([]*shipment.Order{
		makeOrder(shipment.SizeS),
		makeOrder(shipment.SizeM),
		delivered,
		intervention,
	})

	assert.Equal(t, 3, used)
}
