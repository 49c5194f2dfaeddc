package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCloseAccountCommandIsNotConstructed = errors.New(
	"CloseAccountCommand must be created via NewCloseAccountCommand constructor",
)

// CloseAccountCommand removes a person's login. Their client or employee
// registration stays.
type CloseAccountCommand struct {
	personID kernel.ID

	guard guard.ConstructorGuard
}

// NewCloseAccountCommand creates the command.
func NewCloseAccountCommand(personID kernel.ID) (CloseAccountCommand, error) {
	if err := personID.Validate(); err != nil {
		return CloseAccountCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	return CloseAccountCommand{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseAccountCommand) Validate() error {
	return c.guard.Validate(ErrCloseAccountCommandIsNotConstructed)
}

func (c CloseAccountCommand) PersonID() kernel.ID { return c.personID }
