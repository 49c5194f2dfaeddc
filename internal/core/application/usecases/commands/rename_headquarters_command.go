package commands

import (
	"errors"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRenameHeadquartersCommandIsNotConstructed = errors.New(
	"RenameHeadquartersCommand must be created via NewRenameHeadquartersCommand constructor",
)

// RenameHeadquartersCommand rewrites a site's name, kind, phone and address.
type RenameHeadquartersCommand struct {
	headquartersID kernel.ID
	name           string
	kind           depot.Kind
	phone          string
	address        AddressPayload

	guard guard.ConstructorGuard
}

// NewRenameHeadquartersCommand creates the command.
func NewRenameHeadquartersCommand(headquartersID kernel.ID, name string, kind depot.Kind,
	phone string, address AddressPayload) (RenameHeadquartersCommand, error) {
	if err := headquartersID.Validate(); err != nil {
		return RenameHeadquartersCommand{}, errs.NewValueIsInvalidErrorWithCause("headquartersId", err)
	}
	if name == "" {
		return RenameHeadquartersCommand{}, errs.NewValueIsRequiredError("name")
	}
	if err := kind.Validate(); err != nil {
		return RenameHeadquartersCommand{}, err
	}
	if phone == "" {
		return RenameHeadquartersCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return RenameHeadquartersCommand{
		headquartersID: headquartersID,
		name:           name,
		kind:           kind,
		phone:          phone,
		address:        address,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameHeadquartersCommand) Validate() error {
	return c.guard.Validate(ErrRenameHeadquartersCommandIsNotConstructed)
}

func (c RenameHeadquartersCommand) HeadquartersID() kernel.ID { return c.headquartersID }
func (c RenameHeadquartersCommand) Name() string { return c.name }
func (c RenameHeadquartersCommand) Kind() depot.Kind { return c.kind }
func (c RenameHeadquartersCommand) Phone() string { return c.phone }
func (c RenameHeadquartersCommand) Address() AddressPayload { return c.address }
