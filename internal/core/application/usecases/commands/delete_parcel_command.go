package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand removes a parcel and its destination snapshot.
type DeleteParcelCommand struct {
	parcelID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates the command.
func NewDeleteParcelCommand(parcelID kernel.ID) (DeleteParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DeleteParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("parcelId", err)
	}

	return DeleteParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

func (c DeleteParcelCommand) ParcelID() kernel.ID { return c.parcelID }
