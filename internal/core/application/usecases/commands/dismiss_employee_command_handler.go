package commands

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DismissEmployeeCommandHandler drops an employee registration. Blocked
// while the person still holds a staff account, since that account's role
// would point at nothing, and while any parcel names the employee as its
// driver.
type DismissEmployeeCommandHandler struct {
	employees ports.EmployeeRepository
	accounts  ports.AccountRepository
	guard     ports.IntegrityGuard
}

// NewDismissEmployeeCommandHandler creates the handler.
func NewDismissEmployeeCommandHandler(employees ports.EmployeeRepository, accounts ports.AccountRepository,
	guard ports.IntegrityGuard) DismissEmployeeCommandHandler {
	return DismissEmployeeCommandHandler{
		employees: employees,
		accounts:  accounts,
		guard:     guard,
	}
}

// Handle runs the command.
func (h *DismissEmployeeCommandHandler) Handle(ctx context.Context, cmd DismissEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.employees.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	acc, err := h.accounts.Get(ctx, cmd.PersonID())
	switch {
	case err == nil:
		if acc.Role().IsStaff() {
			return errs.NewObjectInUseError("personId", cmd.PersonID(), ports.AccountByPerson.String())
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	driving, err := h.guard.Refers(ctx, ports.ParcelByDriver, cmd.PersonID())
	if err != nil {
		return err
	}
	if driving {
		return errs.NewObjectInUseError("personId", cmd.PersonID(), ports.ParcelByDriver.String())
	}

	return h.employees.Delete(ctx, cmd.PersonID())
}
