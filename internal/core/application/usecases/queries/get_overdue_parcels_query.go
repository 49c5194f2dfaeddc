package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
	"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
)

// GetOverdueParcelsQuery lists parcels that have not reached a final status
// and are past due. A parcel with an expected delivery date is overdue once
// that date is behind asOf; one without falls back to the registration
// cutoff. The periodic report job runs it on a schedule; operators can also
// run it ad hoc with their own cutoff.
type GetOverdueParcelsQuery struct {
	asOf           time.Time
	fallbackCutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates the query.
func NewGetOverdueParcelsQuery(asOf, fallbackCutoff time.Time) (GetOverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueParcelsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	if fallbackCutoff.IsZero() {
		return GetOverdueParcelsQuery{}, errs.NewValueIsRequiredError("fallbackCutoff")
	}

	return GetOverdueParcelsQuery{
		asOf:           asOf,
		fallbackCutoff: fallbackCutoff,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the instant expected delivery dates are compared against.
func (q GetOverdueParcelsQuery) AsOf() time.Time { return q.asOf }

// FallbackCutoff returns the registration cutoff used for parcels without
// an expected delivery date.
func (q GetOverdueParcelsQuery) FallbackCutoff() time.Time { return q.fallbackCutoff }

// GetOverdueParcelsQueryResponse is one overdue parcel in the read model.
type GetOverdueParcelsQueryResponse struct {
	ID               int64
	TrackingCode     string
	Status           string
	RegisteredAt     time.Time
	ExpectedDelivery *time.Time
	SenderID         int64
	RecipientID      int64
}
