package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/guard"
)

var ErrRetireVehicleCommandIsNotConstructed = errors.New(
	"RetireVehicleCommand must be created via NewRetireVehicleCommand constructor",
)

// RetireVehicleCommand removes a vehicle from the fleet.
type RetireVehicleCommand struct {
	plate fleet.Plate

	guard guard.ConstructorGuard
}

// NewRetireVehicleCommand creates the command.
func NewRetireVehicleCommand(plate fleet.Plate) (RetireVehicleCommand, error) {
	if err := plate.Validate(); err != nil {
		return RetireVehicleCommand{}, err
	}

	return RetireVehicleCommand{
		plate: plate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetireVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRetireVehicleCommandIsNotConstructed)
}

func (c RetireVehicleCommand) Plate() fleet.Plate { return c.plate }
