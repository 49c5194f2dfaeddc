package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDismissEmployeeCommandIsNotConstructed = errors.New(
	"DismissEmployeeCommand must be created via NewDismissEmployeeCommand constructor",
)

// DismissEmployeeCommand drops a person's employee registration. The person
// row itself stays.
type DismissEmployeeCommand struct {
	personID kernel.ID

	guard guard.ConstructorGuard
}

// NewDismissEmployeeCommand creates the command.
func NewDismissEmployeeCommand(personID kernel.ID) (DismissEmployeeCommand, error) {
	if err := personID.Validate(); err != nil {
		return DismissEmployeeCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	return DismissEmployeeCommand{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DismissEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDismissEmployeeCommandIsNotConstructed)
}

func (c DismissEmployeeCommand) PersonID() kernel.ID { return c.personID }
