package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DeleteShipmentEventCommandHandler removes a whole load event. Unlike the
// single-entry removal, deleting an event that does not exist is an error:
// the caller named a specific event and got its key wrong.
type DeleteShipmentEventCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewDeleteShipmentEventCommandHandler creates the handler.
func NewDeleteShipmentEventCommandHandler(shipments ports.ShipmentRepository) DeleteShipmentEventCommandHandler {
	return DeleteShipmentEventCommandHandler{
		shipments: shipments,
	}
}

// Handle runs the command.
func (h *DeleteShipmentEventCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entries, err := h.shipments.GetEventEntries(ctx, cmd.Plate(), cmd.LoadedAt())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errs.NewObjectNotFoundError("shipmentEvent",
			fmt.Sprintf("%s@%s", cmd.Plate(), cmd.LoadedAt().Format("2006-01-02 15:04:05")))
	}

	return h.shipments.DeleteEvent(ctx, cmd.Plate(), cmd.LoadedAt())
}
