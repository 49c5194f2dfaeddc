package commands

import (
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrHireEmployeeCommandIsNotConstructed = errors.New(
	"HireEmployeeCommand must be created via NewHireEmployeeCommand constructor",
)

// HireEmployeeCommand marks an existing person as an employee. The role
// decides which reference may come with it: drivers a vehicle plate, site
// staff a headquarters id, admins neither. Both are optional.
type HireEmployeeCommand struct {
	personID       kernel.ID
	cpf            string
	department     string
	role           staff.Role
	vehiclePlate   *fleet.Plate
	headquartersID *kernel.ID

	guard guard.ConstructorGuard
}

// NewHireEmployeeCommand creates the command. The role reference rules are
// checked here so a mismatched request never reaches the handler.
func NewHireEmployeeCommand(personID kernel.ID, cpf, department string, role staff.Role,
	vehiclePlate *fleet.Plate, headquartersID *kernel.ID) (HireEmployeeCommand, error) {
	if err := personID.Validate(); err != nil {
		return HireEmployeeCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	// Run the same checks the entity runs, without persisting anything.
	if _, err := staff.NewEmployee(personID, cpf, department, role, vehiclePlate, headquartersID); err != nil {
		return HireEmployeeCommand{}, err
	}

	return HireEmployeeCommand{
		personID:       personID,
		cpf:            cpf,
		department:     department,
		role:           role,
		vehiclePlate:   vehiclePlate,
		headquartersID: headquartersID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HireEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrHireEmployeeCommandIsNotConstructed)
}

func (c HireEmployeeCommand) PersonID() kernel.ID { return c.personID }
func (c HireEmployeeCommand) CPF() string { return c.cpf }
func (c HireEmployeeCommand) Department() string { return c.department }
func (c HireEmployeeCommand) Role() staff.Role { return c.role }
func (c HireEmployeeCommand) VehiclePlate() *fleet.Plate { return c.vehiclePlate }
func (c HireEmployeeCommand) HeadquartersID() *kernel.ID { return c.headquartersID }
