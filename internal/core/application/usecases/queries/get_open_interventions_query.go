package queries

import (
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

// ErrGetOpenInterventionsQueryIsNotConstructed is returned when the
// query was not created through its constructor.
var ErrGetOpenInterventionsQueryIsNotConstructed = errors.New(
	"GetOpenInterventionsQuery must be created via NewGetOpenInterventionsQuery")

// GetOpenInterventionsQuery lists every order currently parked in the
// intervention state. Used by the watch job to surface shipments that
// need a dispatcher decision.
type GetOpenInterventionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenInterventionsQuery creates the query.
func NewGetOpenInterventionsQuery() GetOpenInterventionsQuery {
	return GetOpenInterventionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenInterventionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenInterventionsQueryIsNotConstructed)
}

// OpenInterventionResponse is one order awaiting a dispatcher decision.
type OpenInterventionResponse struct {
	OrderID   kernel.UUID
	OrderCode string
	Since     time.Time
}
