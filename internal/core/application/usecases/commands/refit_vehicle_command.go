package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRefitVehicleCommandIsNotConstructed = errors.New(
	"RefitVehicleCommand must be created via NewRefitVehicleCommand constructor",
)

// RefitVehicleCommand updates a vehicle's capacity, type and availability.
// The plate never changes.
type RefitVehicleCommand struct {
	plate        fleet.Plate
	capacity     kernel.Weight
	vehicleType  string
	availability fleet.Availability

	guard guard.ConstructorGuard
}

// NewRefitVehicleCommand creates the command.
func NewRefitVehicleCommand(plate fleet.Plate, capacity kernel.Weight, vehicleType string, availability fleet.Availability) (RefitVehicleCommand, error) {
	if err := plate.Validate(); err != nil {
		return RefitVehicleCommand{}, err
	}
	if err := capacity.Validate(); err != nil {
		return RefitVehicleCommand{}, errs.NewValueIsInvalidErrorWithCause("capacity", err)
	}
	if vehicleType == "" {
		return RefitVehicleCommand{}, errs.NewValueIsRequiredError("vehicleType")
	}
	if err := availability.Validate(); err != nil {
		return RefitVehicleCommand{}, err
	}

	return RefitVehicleCommand{
		plate:        plate,
		capacity:     capacity,
		vehicleType:  vehicleType,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefitVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRefitVehicleCommandIsNotConstructed)
}

func (c RefitVehicleCommand) Plate() fleet.Plate { return c.plate }
func (c RefitVehicleCommand) Capacity() kernel.Weight { return c.capacity }
func (c RefitVehicleCommand) VehicleType() string { return c.vehicleType }
func (c RefitVehicleCommand) Availability() fleet.Availability { return c.availability }
