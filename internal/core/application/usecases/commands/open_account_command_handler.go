package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// OpenAccountCommandHandler opens a login. The requested role must match
// the person's registration: a client-role account needs a client row, a
// staff-role account needs an employee with a consistent role. A person
// holds at most one account.
type OpenAccountCommandHandler struct {
	people    ports.PersonRepository
	clients   ports.ClientRepository
	employees ports.EmployeeRepository
	accounts  ports.AccountRepository
	hasher    ports.PasswordHasher
}

// NewOpenAccountCommandHandler creates the handler.
func NewOpenAccountCommandHandler(people ports.PersonRepository, clients ports.ClientRepository,
	employees ports.EmployeeRepository, accounts ports.AccountRepository, hasher ports.PasswordHasher) OpenAccountCommandHandler {
	return OpenAccountCommandHandler{
		people:    people,
		clients:   clients,
		employees: employees,
		accounts:  accounts,
		hasher:    hasher,
	}
}

// Handle runs the command.
func (h *OpenAccountCommandHandler) Handle(ctx context.Context, cmd OpenAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.people.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	if _, err := h.accounts.Get(ctx, cmd.PersonID()); err == nil {
		return errs.NewDuplicateValueError("personId", cmd.PersonID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := h.checkRoleConsistency(ctx, cmd); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.PersonID(), cmd.Username(), hash, cmd.Role())
	if err != nil {
		return err
	}

	return h.accounts.Add(ctx, acc)
}

func (h *OpenAccountCommandHandler) checkRoleConsistency(ctx context.Context, cmd OpenAccountCommand) error {
	if !cmd.Role().IsStaff() {
		// Client login: the person must be a registered client.
		if _, err := h.clients.Get(ctx, cmd.PersonID()); err != nil {
			return err
		}
		return nil
	}

	employee, err := h.employees.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}
	if !cmd.Role().MatchesEmployee(employee.Role()) {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("account role %s does not match employee role %s", cmd.Role(), employee.Role()))
	}
	return nil
}
