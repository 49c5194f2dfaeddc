package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetLoadCandidatesQueryIsNotConstructed = errors.New(
	"GetLoadCandidatesQuery must be created via NewGetLoadCandidatesQuery constructor",
)

// GetLoadCandidatesQuery lists the parcels eligible for one load event:
// those in a loadable status that are not already sitting in the
// (plate, loadedAt) event. Parcels in other events stay eligible.
type GetLoadCandidatesQuery struct {
	plate    fleet.Plate
	loadedAt time.Time

	guard guard.ConstructorGuard
}

// NewGetLoadCandidatesQuery creates the query.
func NewGetLoadCandidatesQuery(plate fleet.Plate, loadedAt time.Time) (GetLoadCandidatesQuery, error) {
	if err := plate.Validate(); err != nil {
		return GetLoadCandidatesQuery{}, err
	}
	if loadedAt.IsZero() {
		return GetLoadCandidatesQuery{}, errs.NewValueIsRequiredError("loadedAt")
	}

	return GetLoadCandidatesQuery{
		plate:    plate,
		loadedAt: loadedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadCandidatesQueryIsNotConstructed)
}

// Plate returns the vehicle the event belongs to.
func (q GetLoadCandidatesQuery) Plate() fleet.Plate { return q.plate }

// LoadedAt returns the event timestamp candidates are screened against.
func (q GetLoadCandidatesQuery) LoadedAt() time.Time { return q.loadedAt }

// GetLoadCandidatesQueryResponse is one eligible parcel in the read model.
type GetLoadCandidatesQueryResponse struct {
	ID           int64
	TrackingCode string
	WeightKG     float64
	Status       string
	RegisteredAt time.Time
}
