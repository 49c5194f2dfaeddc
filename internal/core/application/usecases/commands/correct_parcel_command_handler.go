package commands

import (
	"context"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
)

// CorrectParcelCommandHandler fixes a parcel's mutable attributes. The
// transition policy is fixed at composition time: back offices that trust
// their operators run Permissive, others run Guarded.
type CorrectParcelCommandHandler struct {
	parcels   ports.ParcelRepository
	employees ports.EmployeeRepository
	policy    parcel.TransitionPolicy
}

// NewCorrectParcelCommandHandler creates the handler.
func NewCorrectParcelCommandHandler(parcels ports.ParcelRepository, employees ports.EmployeeRepository,
	policy parcel.TransitionPolicy) CorrectParcelCommandHandler {
	return CorrectParcelCommandHandler{
		parcels:   parcels,
		employees: employees,
		policy:    policy,
	}
}

// Handle runs the command.
func (h *CorrectParcelCommandHandler) Handle(ctx context.Context, cmd CorrectParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.parcels.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err := checkDriver(ctx, h.employees, cmd.DriverID()); err != nil {
		return err
	}

	if err := p.Correct(cmd.Weight(), cmd.Category(), cmd.ExpectedDelivery(), cmd.DriverID()); err != nil {
		return err
	}

	if err := p.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return err
	}

	return h.parcels.Update(ctx, p)
}
