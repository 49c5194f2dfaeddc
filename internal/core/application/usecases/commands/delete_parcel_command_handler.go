package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/sequence"
)

// DeleteParcelCommandHandler removes a parcel and then its snapshot. A
// parcel that appears in a load entry cannot go. The parcel's status is not
// checked: deleting a delivered parcel is an accepted back-office cleanup.
// If the snapshot delete fails after the parcel is gone, the partial state
// is reported rather than rolled back.
type DeleteParcelCommandHandler struct {
	parcels   ports.ParcelRepository
	integrity ports.IntegrityGuard
}

// NewDeleteParcelCommandHandler creates the handler.
func NewDeleteParcelCommandHandler(parcels ports.ParcelRepository, integrity ports.IntegrityGuard) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		parcels:   parcels,
		integrity: integrity,
	}
}

// Handle runs the command.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	referenced, err := h.integrity.Refers(ctx, ports.ShipmentEntryByParcel, cmd.ParcelID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectInUseError("parcelId", cmd.ParcelID(), ports.ShipmentEntryByParcel.String())
	}

	result := sequence.New().
		Add(sequence.Step{
			Name: "parcel.delete",
			Run: func(ctx context.Context) error {
				return h.parcels.Delete(ctx, cmd.ParcelID())
			},
		}).
		Add(sequence.Step{
			Name: "snapshot.delete",
			Run: func(ctx context.Context) error {
				return h.parcels.DeleteSnapshot(ctx, p.SnapshotID())
			},
		}).
		Execute(ctx)

	if result.Failed() {
		return result
	}

	return nil
}
