package commands

import (
	"errors"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrOpenHeadquartersCommandIsNotConstructed = errors.New(
	"OpenHeadquartersCommand must be created via NewOpenHeadquartersCommand constructor",
)

// OpenHeadquartersCommand opens a new site with its own fresh address.
// Site addresses are never shared with people.
type OpenHeadquartersCommand struct {
	name    string
	kind    depot.Kind
	phone   string
	address AddressPayload

	guard guard.ConstructorGuard
}

// NewOpenHeadquartersCommand creates the command.
func NewOpenHeadquartersCommand(name string, kind depot.Kind, phone string, address AddressPayload) (OpenHeadquartersCommand, error) {
	if name == "" {
		return OpenHeadquartersCommand{}, errs.NewValueIsRequiredError("name")
	}
	if err := kind.Validate(); err != nil {
		return OpenHeadquartersCommand{}, err
	}
	if phone == "" {
		return OpenHeadquartersCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return OpenHeadquartersCommand{
		name:    name,
		kind:    kind,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenHeadquartersCommand) Validate() error {
	return c.guard.Validate(ErrOpenHeadquartersCommandIsNotConstructed)
}

func (c OpenHeadquartersCommand) Name() string { return c.name }
func (c OpenHeadquartersCommand) Kind() depot.Kind { return c.kind }
func (c OpenHeadquartersCommand) Phone() string { return c.phone }
func (c OpenHeadquartersCommand) Address() AddressPayload { return c.address }
