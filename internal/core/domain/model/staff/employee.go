// Package staff holds the Employee entity and the role rules that decide
// which operational references an employee must carry.
package staff

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrEmployeeIsNotConstructed is returned when using an Employee that was not
// created via NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Role is an employee's job function. The role dictates which reference the
// employee may carry: drivers a vehicle, site staff a headquarters, admins
// neither. The reference itself is optional; an unassigned driver simply has
// no plate yet.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota

	// Driver operates a vehicle and may reference one by plate.
	Driver

	// LogisticsAssistant works at a site and may reference a headquarters.
	LogisticsAssistant

	// Attendant works at a site and may reference a headquarters.
	Attendant

	// Manager runs a site and may reference a headquarters.
	Manager

	// Admin is back-office staff with no operational reference.
	Admin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:        "Unknown",
		Driver:             "Driver",
		LogisticsAssistant: "LogisticsAssistant",
		Attendant:          "Attendant",
		Manager:            "Manager",
		Admin:              "Admin",
	}
}

// ParseRole converts the persisted representation back to a Role.
func ParseRole(s string) (Role, error) {
	for r, str := range roleStrings() {
		if str == s && r != UnknownRole {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the role is one of the valid values.
func (r Role) Validate() error {
	switch r {
	case Driver, LogisticsAssistant, Attendant, Manager, Admin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%d is not a valid role", r))
}

// TakesVehicle reports whether the role may reference a vehicle.
func (r Role) TakesVehicle() bool {
	return r == Driver
}

// TakesHeadquarters reports whether the role may reference a site.
func (r Role) TakesHeadquarters() bool {
	return r == LogisticsAssistant || r == Attendant || r == Manager
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Employee annotates a person with employment data, a role and the
// reference that role requires. It is keyed by the person's id (1:1 with
// Person). The CPF is the employment document and is unique across staff.
type Employee struct {
	personID   kernel.ID
	cpf        string
	department string
	role       Role

	// Set only when role.TakesVehicle; nil while unassigned.
	vehiclePlate *fleet.Plate

	// Set only when role.TakesHeadquarters; nil while unassigned.
	headquartersID *kernel.ID

	guard guard.ConstructorGuard
}

// NewEmployee creates an employee. The reference arguments must match the
// role: only a Driver may carry a plate, only site roles a headquarters, an
// Admin neither. Either reference may be nil while unassigned.
func NewEmployee(personID kernel.ID, cpf, department string, role Role,
	vehiclePlate *fleet.Plate, headquartersID *kernel.ID) (*Employee, error) {
	e := &Employee{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setPersonID(personID),
		e.setCPF(cpf),
		e.setDepartment(department),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := e.setReferences(vehiclePlate, headquartersID); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEmployee reconstructs a persisted employee, re-checking the role
// reference rules so a corrupted row is rejected on load.
func RestoreEmployee(personID kernel.ID, cpf, department string, role Role,
	vehiclePlate *fleet.Plate, headquartersID *kernel.ID) (*Employee, error) {
	return NewEmployee(personID, cpf, department, role, vehiclePlate, headquartersID)
}

// PersonID returns the id of the annotated person.
func (e *Employee) PersonID() kernel.ID {
	return e.personID
}

// CPF returns the employment document.
func (e *Employee) CPF() string {
	return e.cpf
}

// Department returns the department the employee works in.
func (e *Employee) Department() string {
	return e.department
}

// Role returns the employee's job function.
func (e *Employee) Role() Role {
	return e.role
}

// VehiclePlate returns the assigned vehicle's plate, nil for non-drivers and
// for drivers without a vehicle.
func (e *Employee) VehiclePlate() *fleet.Plate {
	return e.vehiclePlate
}

// HeadquartersID returns the assigned site's id, nil when no site is
// assigned.
func (e *Employee) HeadquartersID() *kernel.ID {
	return e.headquartersID
}

// Reassign changes the employee's department, role and references together,
// re-checking the role reference rules. The CPF never changes. The employee
// is left unchanged on error.
func (e *Employee) Reassign(department string, role Role, vehiclePlate *fleet.Plate, headquartersID *kernel.ID) error {
	prevDepartment, prevRole := e.department, e.role
	if err := errors.Join(
		e.setDepartment(department),
		e.setRole(role),
	); err != nil {
		e.department = prevDepartment
		e.role = prevRole
		return err
	}
	if err := e.setReferences(vehiclePlate, headquartersID); err != nil {
		e.department = prevDepartment
		e.role = prevRole
		return err
	}
	return nil
}

func (e *Employee) setPersonID(personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	e.personID = personID
	return nil
}

func (e *Employee) setCPF(cpf string) error {
	if cpf == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	e.cpf = cpf
	return nil
}

func (e *Employee) setDepartment(department string) error {
	if department == "" {
		return errs.NewValueIsRequiredError("department")
	}
	e.department = department
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}

func (e *Employee) setReferences(vehiclePlate *fleet.Plate, headquartersID *kernel.ID) error {
	if vehiclePlate != nil {
		if !e.role.TakesVehicle() {
			return errs.NewValueIsInvalidErrorWithCause("vehiclePlate",
				fmt.Errorf("role %s does not take a vehicle", e.role))
		}
		if err := vehiclePlate.Validate(); err != nil {
			return err
		}
	}
	if headquartersID != nil {
		if !e.role.TakesHeadquarters() {
			return errs.NewValueIsInvalidErrorWithCause("headquartersId",
				fmt.Errorf("role %s does not take a headquarters", e.role))
		}
		if err := headquartersID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("headquartersId", err)
		}
	}

	e.vehiclePlate = vehiclePlate
	e.headquartersID = headquartersID
	return nil
}

// Validate checks that the employee was properly constructed.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}
