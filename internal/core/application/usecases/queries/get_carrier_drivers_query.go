package queries

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

// ErrGetCarrierDriversQueryIsNotConstructed is returned when the query
// was not created through its constructor.
var ErrGetCarrierDriversQueryIsNotConstructed = errors.New(
	"GetCarrierDriversQuery must be created via NewGetCarrierDriversQuery")

// GetCarrierDriversQuery lists the drivers employed by a carrier.
type GetCarrierDriversQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierDriversQuery creates a carrier driver listing query.
func NewGetCarrierDriversQuery(carrierID kernel.UUID) (GetCarrierDriversQuery, error) {
	q := GetCarrierDriversQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCarrierID(carrierID); err != nil {
		return GetCarrierDriversQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierDriversQueryIsNotConstructed)
}

// CarrierID returns the employing carrier.
func (q GetCarrierDriversQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q *GetCarrierDriversQuery) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	q.carrierID = carrierID
	return nil
}

// DriverSummaryResponse is one row of a carrier's driver list. The PIN
// is included: the carrier hands credentials to its own drivers.
type DriverSummaryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	IDCode    string
	PinCode   string
}
