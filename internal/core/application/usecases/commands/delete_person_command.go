package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeletePersonCommandIsNotConstructed = errors.New(
	"DeletePersonCommand must be created via NewDeletePersonCommand constructor",
)

// DeletePersonCommand removes a person, and their address if nothing else
// references it.
type DeletePersonCommand struct {
	personID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeletePersonCommand creates the command.
func NewDeletePersonCommand(personID kernel.ID) (DeletePersonCommand, error) {
	if err := personID.Validate(); err != nil {
		return DeletePersonCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	return DeletePersonCommand{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePersonCommand) Validate() error {
	return c.guard.Validate(ErrDeletePersonCommandIsNotConstructed)
}

func (c DeletePersonCommand) PersonID() kernel.ID { return c.personID }
