package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// UnloadParcelCommandHandler removes one entry from a load event. Removing
// an entry that is already gone reports NotFound so a double correction is
// visible to the operator.
type UnloadParcelCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewUnloadParcelCommandHandler creates the handler.
func NewUnloadParcelCommandHandler(shipments ports.ShipmentRepository) UnloadParcelCommandHandler {
	return UnloadParcelCommandHandler{
		shipments: shipments,
	}
}

// Handle runs the command.
func (h *UnloadParcelCommandHandler) Handle(ctx context.Context, cmd UnloadParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.shipments.RemoveEntry(ctx, cmd.Plate(), cmd.ParcelID(), cmd.LoadedAt())
}
