package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterVehicleCommandHandler adds a vehicle. Plates are unique across the
// fleet.
type RegisterVehicleCommandHandler struct {
	vehicles ports.VehicleRepository
}

// NewRegisterVehicleCommandHandler creates the handler.
func NewRegisterVehicleCommandHandler(vehicles ports.VehicleRepository) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		vehicles: vehicles,
	}
}

// Handle runs the command.
func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.vehicles.Get(ctx, cmd.Plate()); err == nil {
		return errs.NewDuplicateValueError("plate", cmd.Plate().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	vehicle, err := fleet.NewVehicle(cmd.Plate(), cmd.Capacity(), cmd.VehicleType(), cmd.Availability())
	if err != nil {
		return err
	}

	return h.vehicles.Add(ctx, vehicle)
}
