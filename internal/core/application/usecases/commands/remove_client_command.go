package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRemoveClientCommandIsNotConstructed = errors.New(
	"RemoveClientCommand must be created via NewRemoveClientCommand constructor",
)

// RemoveClientCommand drops a person's client registration. The person row
// itself stays.
type RemoveClientCommand struct {
	personID kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveClientCommand creates the command.
func NewRemoveClientCommand(personID kernel.ID) (RemoveClientCommand, error) {
	if err := personID.Validate(); err != nil {
		return RemoveClientCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}

	return RemoveClientCommand{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveClientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveClientCommandIsNotConstructed)
}

func (c RemoveClientCommand) PersonID() kernel.ID { return c.personID }
