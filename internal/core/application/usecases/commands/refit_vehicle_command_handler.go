package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// RefitVehicleCommandHandler updates a vehicle's mutable attributes.
type RefitVehicleCommandHandler struct {
	vehicles ports.VehicleRepository
}

// NewRefitVehicleCommandHandler creates the handler.
func NewRefitVehicleCommandHandler(vehicles ports.VehicleRepository) RefitVehicleCommandHandler {
	return RefitVehicleCommandHandler{
		vehicles: vehicles,
	}
}

// Handle runs the command.
func (h *RefitVehicleCommandHandler) Handle(ctx context.Context, cmd RefitVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vehicle, err := h.vehicles.Get(ctx, cmd.Plate())
	if err != nil {
		return err
	}

	if err := vehicle.Refit(cmd.Capacity(), cmd.VehicleType(), cmd.Availability()); err != nil {
		return err
	}

	return h.vehicles.Update(ctx, vehicle)
}
