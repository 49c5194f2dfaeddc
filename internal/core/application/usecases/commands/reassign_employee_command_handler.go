package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// ReassignEmployeeCommandHandler changes an employee's role and reference.
type ReassignEmployeeCommandHandler struct {
	employees    ports.EmployeeRepository
	vehicles     ports.VehicleRepository
	headquarters ports.HeadquartersRepository
}

// NewReassignEmployeeCommandHandler creates the handler.
func NewReassignEmployeeCommandHandler(employees ports.EmployeeRepository,
	vehicles ports.VehicleRepository, headquarters ports.HeadquartersRepository) ReassignEmployeeCommandHandler {
	return ReassignEmployeeCommandHandler{
		employees:    employees,
		vehicles:     vehicles,
		headquarters: headquarters,
	}
}

// Handle runs the command.
func (h *ReassignEmployeeCommandHandler) Handle(ctx context.Context, cmd ReassignEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	employee, err := h.employees.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	if plate := cmd.VehiclePlate(); plate != nil {
		if _, err := h.vehicles.Get(ctx, *plate); err != nil {
			return err
		}
	}
	if hqID := cmd.HeadquartersID(); hqID != nil {
		if _, err := h.headquarters.Get(ctx, *hqID); err != nil {
			return err
		}
	}

	if err := employee.Reassign(cmd.Department(), cmd.Role(), cmd.VehiclePlate(), cmd.HeadquartersID()); err != nil {
		return err
	}

	return h.employees.Update(ctx, employee)
}
