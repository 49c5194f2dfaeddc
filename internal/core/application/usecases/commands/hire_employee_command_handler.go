package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// HireEmployeeCommandHandler marks a person as an employee. The person must
// exist and not already be an employee; a vehicle or site reference, when
// given, must name an existing row.
type HireEmployeeCommandHandler struct {
	people       ports.PersonRepository
	employees    ports.EmployeeRepository
	vehicles     ports.VehicleRepository
	headquarters ports.HeadquartersRepository
}

// NewHireEmployeeCommandHandler creates the handler.
func NewHireEmployeeCommandHandler(people ports.PersonRepository, employees ports.EmployeeRepository,
	vehicles ports.VehicleRepository, headquarters ports.HeadquartersRepository) HireEmployeeCommandHandler {
	return HireEmployeeCommandHandler{
		people:       people,
		employees:    employees,
		vehicles:     vehicles,
		headquarters: headquarters,
	}
}

// Handle runs the command.
func (h *HireEmployeeCommandHandler) Handle(ctx context.Context, cmd HireEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.people.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	if _, err := h.employees.Get(ctx, cmd.PersonID()); err == nil {
		return errs.NewDuplicateValueError("personId", cmd.PersonID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := h.checkReference(ctx, cmd); err != nil {
		return err
	}

	employee, err := staff.NewEmployee(cmd.PersonID(), cmd.CPF(), cmd.Department(), cmd.Role(),
		cmd.VehiclePlate(), cmd.HeadquartersID())
	if err != nil {
		return err
	}

	return h.employees.Add(ctx, employee)
}

func (h *HireEmployeeCommandHandler) checkReference(ctx context.Context, cmd HireEmployeeCommand) error {
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
	return nil
}
