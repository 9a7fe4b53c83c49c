package queries

import (
	"errors"
	"time"

	"couriernet/internal/pkg/errs"
	"couriernet/internal/pkg/guard"
)

// ErrGetChangedOrderCodesQueryIsNotConstructed is returned when the
// query was not created through its constructor.
var ErrGetChangedOrderCodesQueryIsNotConstructed = errors.New(
	"GetChangedOrderCodesQuery must be created via NewGetChangedOrderCodesQuery")

// GetChangedOrderCodesQuery lists order codes whose status changed
// after a point in time. The tracking sweep uses it to drop stale
// cached snapshots.
type GetChangedOrderCodesQuery struct {
	since time.Time

	guard guard.ConstructorGuard
}

// NewGetChangedOrderCodesQuery creates the query.
func NewGetChangedOrderCodesQuery(since time.Time) (GetChangedOrderCodesQuery, error) {
	q := GetChangedOrderCodesQuery{guard: guard.NewConstructorGuard()}

	if since.IsZero() {
		return GetChangedOrderCodesQuery{}, errs.NewValueIsRequiredError("since")
	}
	q.since = since

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChangedOrderCodesQuery) Validate() error {
	return q.guard.Validate(ErrGetChangedOrderCodesQueryIsNotConstructed)
}

// Since returns the lower bound on change time, exclusive.
func (q GetChangedOrderCodesQuery) Since() time.Time {
	return q.since
}
