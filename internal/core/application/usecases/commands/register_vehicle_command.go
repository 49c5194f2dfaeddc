package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand adds a vehicle to the fleet.
type RegisterVehicleCommand struct {
	plate        fleet.Plate
	capacity     kernel.Weight
	vehicleType  string
	availability fleet.Availability

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates the command.
func NewRegisterVehicleCommand(plate fleet.Plate, capacity kernel.Weight, vehicleType string, availability fleet.Availability) (RegisterVehicleCommand, error) {
	// The entity's constructor carries all validation for these fields.
	if _, err := fleet.NewVehicle(plate, capacity, vehicleType, availability); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return RegisterVehicleCommand{
		plate:        plate,
		capacity:     capacity,
		vehicleType:  vehicleType,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) Plate() fleet.Plate { return c.plate }
func (c RegisterVehicleCommand) Capacity() kernel.Weight { return c.capacity }
func (c RegisterVehicleCommand) VehicleType() string { return c.vehicleType }
func (c RegisterVehicleCommand) Availability() fleet.Availability { return c.availability }
