package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCloseHeadquartersCommandIsNotConstructed = errors.New(
	"CloseHeadquartersCommand must be created via NewCloseHeadquartersCommand constructor",
)

// CloseHeadquartersCommand closes a site, and removes its address if
// nothing else references it.
type CloseHeadquartersCommand struct {
	headquartersID kernel.ID

	guard guard.ConstructorGuard
}

// NewCloseHeadquartersCommand creates the command.
func NewCloseHeadquartersCommand(headquartersID kernel.ID) (CloseHeadquartersCommand, error) {
	if err := headquartersID.Validate(); err != nil {
		return CloseHeadquartersCommand{}, errs.NewValueIsInvalidErrorWithCause("headquartersId", err)
	}

	return CloseHeadquartersCommand{
		headquartersID: headquartersID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseHeadquartersCommand) Validate() error {
	return c.guard.Validate(ErrCloseHeadquartersCommandIsNotConstructed)
}

func (c CloseHeadquartersCommand) HeadquartersID() kernel.ID { return c.headquartersID }
