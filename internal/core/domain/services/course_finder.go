package services

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
	"couriernet/internal/core/domain/model/shipment"
)

// ErrCapacityExceeded marks a candidate course whose vehicle cannot fit
// the requested shipment on the target date. During search it is a
// filtering decision, not a caller-visible failure.
var ErrCapacityExceeded = errors.New("vehicle capacity exceeded")

// SameDayCutoff is the minimum lead time between the current wall-clock
// time and a course's departure for same-day delivery.
const SameDayCutoff = 2 * time.Hour

// RelationCandidate bundles everything the finder needs to evaluate one
// relation: its vehicle, its optional price list, its stop sequence
// already ordered by order number, and the capacity consumed by active
// orders on the target date.
type RelationCandidate struct {
	Relation     *route.Relation
	Vehicle      *route.Vehicle
	PriceList    *route.PriceList
	Stops        []*route.Stop
	UsedCapacity int
}

// Course is a concrete offer: a segment of one relation with a fixed
// price and pinned departure and arrival timestamps.
type Course struct {
	Relation  *route.Relation
	Vehicle   *route.Vehicle
	StartStop *route.Stop
	EndStop   *route.Stop
	Price     float64
	Departure time.Time
	Arrival   time.Time
}

// CourseFinder is the domain service behind the availability search. It
// matches a start/end stop pair against pre-ordered relation stop
// sequences and filters candidates on the same-day cutoff and vehicle
// capacity.
//
// Business rules:
//   - Matching happens within a single relation's ordered stop list;
//     the end stop must come strictly after the start stop, and the
//     scan stops at the first occurrence.
//   - Same-day courses must depart at least two hours after the
//     current time of day; the comparison ignores the calendar date.
//   - A candidate is dropped when the active orders on the target date
//     plus the requested size would exceed the vehicle capacity.
//   - A relation without a price list offers the segment for free.
type CourseFinder struct{}

// NewCourseFinder creates a CourseFinder.
func NewCourseFinder() CourseFinder {
	return CourseFinder{}
}

// FindCourses evaluates every candidate relation for the requested
// segment and returns the feasible priced courses. Multiple qualifying
// start-stop rows in one relation produce multiple courses; no matches
// produce an empty slice, not an error.
func (f CourseFinder) FindCourses(
	candidates []RelationCandidate,
	startStop string,
	endStop string,
	size shipment.Size,
	deliverToday bool,
	now time.Time,
) ([]Course, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	targetDate := now
	if !deliverToday {
		targetDate = now.AddDate(0, 0, 1)
	}

	courses := make([]Course, 0)
	for _, candidate := range candidates {
		if err := errors.Join(candidate.Relation.Validate(), candidate.Vehicle.Validate()); err != nil {
			return nil, err
		}

		for i, start := range candidate.Stops {
			if start.Name() != startStop {
				continue
			}

			end := findEndStop(candidate.Stops[i+1:], endStop)
			if end == nil {
				continue
			}
			if deliverToday && !passesCutoff(start.Departure(), now) {
				continue
			}
			if err := f.checkCapacity(candidate, size); err != nil {
				continue
			}

			courses = append(courses, Course{
				Relation:  candidate.Relation,
				Vehicle:   candidate.Vehicle,
				StartStop: start,
				EndStop:   end,
				Price:     segmentPrice(candidate.PriceList, start, end),
				Departure: start.Departure().On(targetDate),
				Arrival:   end.Arrival().On(targetDate),
			})
		}
	}

	return courses, nil
}

// ActiveCapacity sums the size weights of orders still consuming
// vehicle capacity. Delivered and intervention orders never count.
func (f CourseFinder) ActiveCapacity(orders []*shipment.Order) int {
	used := 0
	for _, o := range orders {
		if o.Status().IsActive() {
			used += o.Size().Weight()
		}
	}
	return used
}

func (f CourseFinder) checkCapacity(candidate RelationCandidate, size shipment.Size) error {
	if candidate.UsedCapacity+size.Weight() > candidate.Vehicle.Capacity() {
		return ErrCapacityExceeded
	}
	return nil
}

func findEndStop(stops []*route.Stop, endStop string) *route.Stop {
	for _, s := range stops {
		if s.Name() == endStop {
			return s
		}
	}
	return nil
}

func passesCutoff(departure kernel.TimeOfDay, now time.Time) bool {
	lead := departure.MinutesAfter(kernel.TimeOfDayFromTime(now))
	return time.Duration(lead)*time.Minute >= SameDayCutoff
}

func segmentPrice(priceList *route.PriceList, start, end *route.Stop) float64 {
	if priceList == nil {
		return 0
	}
	return priceList.PriceFor(end.OrderNumber() - start.OrderNumber())
}
