package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// vehicleBlockers are the edges that must be clear before a vehicle can go.
var vehicleBlockers = []ports.Dependency{
	ports.EmployeeByVehicle,
	ports.ShipmentEntryByVehicle,
}

// RetireVehicleCommandHandler removes a vehicle after probing for drivers
// and load entries that still reference it.
type RetireVehicleCommandHandler struct {
	vehicles  ports.VehicleRepository
	integrity ports.IntegrityGuard
}

// NewRetireVehicleCommandHandler creates the handler.
func NewRetireVehicleCommandHandler(vehicles ports.VehicleRepository, integrity ports.IntegrityGuard) RetireVehicleCommandHandler {
	return RetireVehicleCommandHandler{
		vehicles:  vehicles,
		integrity: integrity,
	}
}

// Handle runs the command.
func (h *RetireVehicleCommandHandler) Handle(ctx context.Context, cmd RetireVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.vehicles.Get(ctx, cmd.Plate()); err != nil {
		return err
	}

	for _, dep := range vehicleBlockers {
		referenced, err := h.integrity.Refers(ctx, dep, cmd.Plate().String())
		if err != nil {
			return err
		}
		if referenced {
			return errs.NewObjectInUseError("plate", cmd.Plate().String(), dep.String())
		}
	}

	return h.vehicles.Delete(ctx, cmd.Plate())
}
