package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentEventCommandIsNotConstructed = errors.New(
	"DeleteShipmentEventCommand must be created via NewDeleteShipmentEventCommand constructor",
)

// DeleteShipmentEventCommand removes a whole load event: every entry that
// shares the plate and loading instant.
type DeleteShipmentEventCommand struct {
	plate    fleet.Plate
	loadedAt time.Time

	guard guard.ConstructorGuard
}

// NewDeleteShipmentEventCommand creates the command.
func NewDeleteShipmentEventCommand(plate fleet.Plate, loadedAt time.Time) (DeleteShipmentEventCommand, error) {
	if err := plate.Validate(); err != nil {
		return DeleteShipmentEventCommand{}, err
	}
	if loadedAt.IsZero() {
		return DeleteShipmentEventCommand{}, errs.NewValueIsRequiredError("loadedAt")
	}

	return DeleteShipmentEventCommand{
		plate:    plate,
		loadedAt: loadedAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentEventCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentEventCommandIsNotConstructed)
}

func (c DeleteShipmentEventCommand) Plate() fleet.Plate { return c.plate }
func (c DeleteShipmentEventCommand) LoadedAt() time.Time { return c.loadedAt }
