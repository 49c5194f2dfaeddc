package shipment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPackingSessionIsNotConstructed is returned when using a PackingSession
// that was not created via NewPackingSession.
var ErrPackingSessionIsNotConstructed = errors.New("PackingSession must be created via NewPackingSession constructor")

// PackingSession builds one load event for one vehicle. The vehicle's
// capacity is read once at session start; parcels are proposed one at a time
// and accepted greedily while they fit. A parcel heavier than the remaining
// headroom is rejected without ending the session, so lighter parcels can
// still be added after it.
type PackingSession struct {
	id       uuid.UUID
	plate    fleet.Plate
	capacity kernel.Weight
	loadedAt time.Time

	accepted []*Entry
	running  float64

	guard guard.ConstructorGuard
}

// NewPackingSession opens a session against a vehicle's capacity. loadedAt
// becomes the loading instant stamped on every accepted entry.
func NewPackingSession(plate fleet.Plate, capacity kernel.Weight, loadedAt time.Time) (*PackingSession, error) {
	if err := plate.Validate(); err != nil {
		return nil, err
	}
	if err := capacity.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity", err)
	}
	if loadedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("loadedAt")
	}

	return &PackingSession{
		id:       uuid.New(),
		plate:    plate,
		capacity: capacity,
		loadedAt: loadedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ID returns the session's identity, used to correlate log lines across one
// packing run.
func (s *PackingSession) ID() uuid.UUID {
	return s.id
}

// Plate returns the vehicle being loaded.
func (s *PackingSession) Plate() fleet.Plate {
	return s.plate
}

// LoadedAt returns the loading instant shared by every accepted entry.
func (s *PackingSession) LoadedAt() time.Time {
	return s.loadedAt
}

// Headroom returns the remaining capacity in kilograms.
func (s *PackingSession) Headroom() float64 {
	return s.capacity.KG() - s.running
}

// TotalWeight returns the weight accepted so far in kilograms.
func (s *PackingSession) TotalWeight() float64 {
	return s.running
}

// Propose offers a parcel to the session. It is accepted iff the running
// total plus the parcel's weight stays within capacity; otherwise a
// CapacityExceededError carrying the current headroom is returned and the
// session stays open.
func (s *PackingSession) Propose(parcelID kernel.ID, weight kernel.Weight) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := weight.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}

	for _, e := range s.accepted {
		if e.ParcelID().IsEqual(parcelID) {
			return errs.NewDuplicateValueError("parcelId", parcelID.String())
		}
	}

	if s.running+weight.KG() > s.capacity.KG() {
		return errs.NewCapacityExceededError("weight", weight.KG(), s.capacity.KG(), s.Headroom())
	}

	entry, err := NewEntry(s.plate, parcelID, s.loadedAt)
	if err != nil {
		return err
	}

	s.accepted = append(s.accepted, entry)
	s.running += weight.KG()
	return nil
}

// Entries returns the accepted entries in proposal order.
func (s *PackingSession) Entries() []*Entry {
	return s.accepted
}

// IsEmpty reports whether no parcel has been accepted yet.
func (s *PackingSession) IsEmpty() bool {
	return len(s.accepted) == 0
}

// Validate checks that the session was properly constructed.
func (s *PackingSession) Validate() error {
	if s == nil {
		return ErrPackingSessionIsNotConstructed
	}
	return s.guard.Validate(ErrPackingSessionIsNotConstructed)
}
