// Package queries contains the read-side operations. Handlers either
// assemble domain objects through repository ports or, for flat report
// shapes, run raw SQL against the read connection.
package queries

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/pkg/guard"
)

var (
	ErrGetAvailableCoursesQueryIsNotConstructed = errors.New(
		"GetAvailableCoursesQuery must be created via NewGetAvailableCoursesQuery constructor",
	)
	ErrSearchStartStopIsRequired = errors.New("start stop is required")
	ErrSearchEndStopIsRequired   = errors.New("end stop is required")
)

// GetAvailableCoursesQuery is the availability search request: find
// every relation offering the segment between two named stops with
// enough remaining capacity for the shipment size.
type GetAvailableCoursesQuery struct { //nolint:recvcheck //using for validation
	startStop    string
	endStop      string
	size         shipment.Size
	deliverToday bool

	guard guard.ConstructorGuard
}

// NewGetAvailableCoursesQuery creates an availability search query.
func NewGetAvailableCoursesQuery(
	startStop string,
	endStop string,
	size shipment.Size,
	deliverToday bool,
) (GetAvailableCoursesQuery, error) {
	q := GetAvailableCoursesQuery{
		deliverToday: deliverToday,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStops(startStop, endStop),
		q.setSize(size),
	); err != nil {
		return GetAvailableCoursesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCoursesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCoursesQueryIsNotConstructed)
}

// StartStop returns the requested boarding stop name.
func (q GetAvailableCoursesQuery) StartStop() string {
	return q.startStop
}

// EndStop returns the requested destination stop name.
func (q GetAvailableCoursesQuery) EndStop() string {
	return q.endStop
}

// Size returns the requested shipment size class.
func (q GetAvailableCoursesQuery) Size() shipment.Size {
	return q.size
}

// DeliverToday reports whether the search targets today rather than
// tomorrow.
func (q GetAvailableCoursesQuery) DeliverToday() bool {
	return q.deliverToday
}

func (q *GetAvailableCoursesQuery) setStops(startStop, endStop string) error {
	if startStop == "" {
		return ErrSearchStartStopIsRequired
	}
	if endStop == "" {
		return ErrSearchEndStopIsRequired
	}

	q.startStop = startStop
	q.endStop = endStop
	return nil
}

func (q *GetAvailableCoursesQuery) setSize(size shipment.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	q.size = size
	return nil
}

// GetAvailableCoursesQueryResponse is one feasible priced course.
type GetAvailableCoursesQueryResponse struct {
	RelationID    kernel.UUID
	VehicleID     kernel.UUID
	CarrierID     kernel.UUID
	RelationName  string
	StartStop     string
	EndStop       string
	DepartureTime string
	ArrivalTime   string
	TotalPrice    float64
}
