// Package shipment holds the loading model: entries that tie parcels to a
// vehicle load, and the packing session that builds a load under the
// vehicle's capacity.
package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an Entry that was not
// created via NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry records that one parcel was loaded onto one vehicle at one instant.
// A load event is the set of entries sharing a plate and loading instant;
// there is no separate shipment row.
type Entry struct {
	plate    fleet.Plate
	parcelID kernel.ID
	loadedAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a load entry.
func NewEntry(plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) (*Entry, error) {
	e := &Entry{guard: guard.NewConstructorGuard()}

	if err := plate.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("parcelId", err)
	}
	if loadedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("loadedAt")
	}

	e.plate = plate
	e.parcelID = parcelID
	e.loadedAt = loadedAt
	return e, nil
}

// RestoreEntry reconstructs a persisted entry. Entries carry no surrogate
// key: (plate, parcelId, loadedAt) identifies them.
func RestoreEntry(plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) (*Entry, error) {
	return NewEntry(plate, parcelID, loadedAt)
}

// Plate returns the loaded vehicle's plate.
func (e *Entry) Plate() fleet.Plate {
	return e.plate
}

// ParcelID returns the loaded parcel's id.
func (e *Entry) ParcelID() kernel.ID {
	return e.parcelID
}

// LoadedAt returns the loading instant shared by the whole load event.
func (e *Entry) LoadedAt() time.Time {
	return e.loadedAt
}

// Validate checks that the entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}
