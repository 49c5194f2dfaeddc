package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUnloadParcelCommandIsNotConstructed = errors.New(
	"UnloadParcelCommand must be created via NewUnloadParcelCommand constructor",
)

// UnloadParcelCommand takes one parcel out of a load event.
type UnloadParcelCommand struct {
	plate    fleet.Plate
	parcelID kernel.ID
	loadedAt time.Time

	guard guard.ConstructorGuard
}

// NewUnloadParcelCommand creates the command.
func NewUnloadParcelCommand(plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) (UnloadParcelCommand, error) {
	if err := plate.Validate(); err != nil {
		return UnloadParcelCommand{}, err
	}
	if err := parcelID.Validate(); err != nil {
		return UnloadParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("parcelId", err)
	}
	if loadedAt.IsZero() {
		return UnloadParcelCommand{}, errs.NewValueIsRequiredError("loadedAt")
	}

	return UnloadParcelCommand{
		plate:    plate,
		parcelID: parcelID,
		loadedAt: loadedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadParcelCommand) Validate() error {
	return c.guard.Validate(ErrUnloadParcelCommandIsNotConstructed)
}

func (c UnloadParcelCommand) Plate() fleet.Plate { return c.plate }
func (c UnloadParcelCommand) ParcelID() kernel.ID { return c.parcelID }
func (c UnloadParcelCommand) LoadedAt() time.Time { return c.loadedAt }
