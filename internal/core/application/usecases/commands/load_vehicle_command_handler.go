package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RejectedParcel names a parcel that did not make it into the load and why.
type RejectedParcel struct {
	ParcelID kernel.ID
	Reason   error
}

// LoadReport is the outcome of a load operation. A load succeeds when at
// least one entry was written; rejected and failed parcels are listed so
// the operator can retry them on the next run.
type LoadReport struct {
	Plate    fleet.Plate
	LoadedAt time.Time
	Loaded   []kernel.ID
	Rejected []RejectedParcel
	Failed   []RejectedParcel
}

// LoadVehicleCommandHandler packs parcels onto a vehicle. The vehicle's
// capacity is read once at the start; each parcel is then screened (must
// exist, must be in a loadable status, must not already sit in this event)
// and proposed to the packing session. Surviving entries are written one by
// one, tolerating per-entry failures. A parcel that only appears in OTHER
// events stays eligible: the membership rule is per (plate, loadedAt) key.
type LoadVehicleCommandHandler struct {
	vehicles  ports.VehicleRepository
	parcels   ports.ParcelRepository
	shipments ports.ShipmentRepository
	clock     Clock
}

// NewLoadVehicleCommandHandler creates the handler.
func NewLoadVehicleCommandHandler(vehicles ports.VehicleRepository, parcels ports.ParcelRepository,
	shipments ports.ShipmentRepository, clock Clock) LoadVehicleCommandHandler {
	return LoadVehicleCommandHandler{
		vehicles:  vehicles,
		parcels:   parcels,
		shipments: shipments,
		clock:     clock,
	}
}

// Handle runs the command. The returned report is non-nil whenever the load
// event was created, even if some parcels were rejected or failed.
func (h *LoadVehicleCommandHandler) Handle(ctx context.Context, cmd LoadVehicleCommand) (*LoadReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := h.vehicles.Get(ctx, cmd.Plate())
	if err != nil {
		return nil, err
	}
	if vehicle.Availability() != fleet.Available {
		return nil, errs.NewValueIsInvalidError("plate")
	}

	loadedAt := cmd.LoadedAt()
	if loadedAt.IsZero() {
		loadedAt = h.clock()
	}

	session, err := shipment.NewPackingSession(vehicle.Plate(), vehicle.Capacity(), loadedAt)
	if err != nil {
		return nil, err
	}

	inEvent, err := h.eventMembers(ctx, vehicle.Plate(), loadedAt)
	if err != nil {
		return nil, err
	}

	report := &LoadReport{
		Plate:    session.Plate(),
		LoadedAt: session.LoadedAt(),
	}

	for _, parcelID := range cmd.ParcelIDs() {
		if reason := h.screen(ctx, session, inEvent, parcelID); reason != nil {
			report.Rejected = append(report.Rejected, RejectedParcel{ParcelID: parcelID, Reason: reason})
		}
	}

	if session.IsEmpty() {
		reasons := make([]error, 0, len(report.Rejected))
		for _, rejected := range report.Rejected {
			reasons = append(reasons, fmt.Errorf("parcel %d: %w", rejected.ParcelID.Int64(), rejected.Reason))
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("parcelIds", errors.Join(reasons...))
	}

	// Best-effort persistence: one insert per entry, a failure does not
	// take down the entries already written.
	for _, entry := range session.Entries() {
		if err := h.shipments.AddEntry(ctx, entry); err != nil {
			report.Failed = append(report.Failed, RejectedParcel{ParcelID: entry.ParcelID(), Reason: err})
			continue
		}
		report.Loaded = append(report.Loaded, entry.ParcelID())
	}

	if len(report.Loaded) == 0 {
		return nil, errs.NewPersistenceError("shipment.addEntry", report.Failed[0].Reason)
	}

	return report, nil
}

// eventMembers lists the parcels already sitting in the (plate, loadedAt)
// event, so appending to an existing event skips them up front.
func (h *LoadVehicleCommandHandler) eventMembers(ctx context.Context, plate fleet.Plate, loadedAt time.Time) (map[kernel.ID]struct{}, error) {
	entries, err := h.shipments.GetEventEntries(ctx, plate, loadedAt)
	if err != nil {
		return nil, err
	}

	members := make(map[kernel.ID]struct{}, len(entries))
	for _, entry := range entries {
		members[entry.ParcelID()] = struct{}{}
	}
	return members, nil
}

// screen checks one parcel and proposes it; a non-nil return is the reason
// the parcel stays behind.
func (h *LoadVehicleCommandHandler) screen(ctx context.Context, session *shipment.PackingSession,
	inEvent map[kernel.ID]struct{}, parcelID kernel.ID) error {
	p, err := h.parcels.Get(ctx, parcelID)
	if err != nil {
		return err
	}

	if !p.Status().Loadable() {
		return errs.NewValueIsInvalidError("status")
	}

	if _, loaded := inEvent[parcelID]; loaded {
		return errs.NewDuplicateValueError("parcelId", parcelID)
	}

	return session.Propose(parcelID, p.Weight())
}
