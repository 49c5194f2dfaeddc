package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrReassignEmployeeCommandIsNotConstructed = errors.New(
	"ReassignEmployeeCommand must be created via NewReassignEmployeeCommand constructor",
)

// ReassignEmployeeCommand changes an employee's department, role and the
// reference the new role takes. Passing nil unassigns a reference.
type ReassignEmployeeCommand struct {
	personID       kernel.ID
	department     string
	role           staff.Role
	vehiclePlate   *fleet.Plate
	headquartersID *kernel.ID

	guard guard.ConstructorGuard
}

// NewReassignEmployeeCommand creates the command.
func NewReassignEmployeeCommand(personID kernel.ID, department string, role staff.Role,
	vehiclePlate *fleet.Plate, headquartersID *kernel.ID) (ReassignEmployeeCommand, error) {
	if err := personID.Validate(); err != nil {
		return ReassignEmployeeCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	// The CPF is fixed at hire, so the reference rules are checked with a
	// placeholder document.
	if _, err := staff.NewEmployee(personID, "unchanged", department, role, vehiclePlate, headquartersID); err != nil {
		return ReassignEmployeeCommand{}, err
	}

	return ReassignEmployeeCommand{
		personID:       personID,
		department:     department,
		role:           role,
		vehiclePlate:   vehiclePlate,
		headquartersID: headquartersID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrReassignEmployeeCommandIsNotConstructed)
}

func (c ReassignEmployeeCommand) PersonID() kernel.ID { return c.personID }
func (c ReassignEmployeeCommand) Department() string { return c.department }
func (c ReassignEmployeeCommand) Role() staff.Role { return c.role }
func (c ReassignEmployeeCommand) VehiclePlate() *fleet.Plate { return c.vehiclePlate }
func (c ReassignEmployeeCommand) HeadquartersID() *kernel.ID { return c.headquartersID }
