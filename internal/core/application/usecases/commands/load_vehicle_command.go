package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLoadVehicleCommandIsNotConstructed = errors.New(
	"LoadVehicleCommand must be created via NewLoadVehicleCommand constructor",
)

// LoadVehicleCommand packs a set of parcels onto a vehicle as one load
// event, keyed by (plate, loadedAt). Parcels are considered in the given
// order. A zero loadedAt means the event is stamped with the current time;
// a past instant appends to that existing event instead.
type LoadVehicleCommand struct {
	plate     fleet.Plate
	parcelIDs []kernel.ID
	loadedAt  time.Time

	guard guard.ConstructorGuard
}

// NewLoadVehicleCommand creates the command.
func NewLoadVehicleCommand(plate fleet.Plate, parcelIDs []kernel.ID, loadedAt time.Time) (LoadVehicleCommand, error) {
	if err := plate.Validate(); err != nil {
		return LoadVehicleCommand{}, err
	}
	if len(parcelIDs) == 0 {
		return LoadVehicleCommand{}, errs.NewValueIsRequiredError("parcelIds")
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return LoadVehicleCommand{}, errs.NewValueIsInvalidErrorWithCause("parcelIds", err)
		}
	}

	return LoadVehicleCommand{
		plate:     plate,
		parcelIDs: parcelIDs,
		loadedAt:  loadedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadVehicleCommand) Validate() error {
	return c.guard.Validate(ErrLoadVehicleCommandIsNotConstructed)
}

func (c LoadVehicleCommand) Plate() fleet.Plate { return c.plate }
func (c LoadVehicleCommand) ParcelIDs() []kernel.ID { return c.parcelIDs }

// LoadedAt returns the event timestamp, zero when the caller left it to the
// handler's clock.
func (c LoadVehicleCommand) LoadedAt() time.Time { return c.loadedAt }
