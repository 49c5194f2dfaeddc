package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdatePersonCommandIsNotConstructed = errors.New(
	"UpdatePersonCommand must be created via NewUpdatePersonCommand constructor",
)

// UpdatePersonCommand rewrites a person's contact data and their address.
// Because addresses are shared, the address change is visible to every
// referrer of the same address row.
type UpdatePersonCommand struct {
	personID   kernel.ID
	name       string
	nationalID *string
	phone      string
	email      string
	address    AddressPayload

	guard guard.ConstructorGuard
}

// NewUpdatePersonCommand creates the command.
func NewUpdatePersonCommand(personID kernel.ID, name string, nationalID *string, phone, email string, address AddressPayload) (UpdatePersonCommand, error) {
	command := UpdatePersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := personID.Validate(); err != nil {
		return UpdatePersonCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	if name == "" {
		return UpdatePersonCommand{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return UpdatePersonCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if email == "" {
		return UpdatePersonCommand{}, errs.NewValueIsRequiredError("email")
	}

	command.personID = personID
	command.name = name
	command.nationalID = nationalID
	command.phone = phone
	command.email = email
	command.address = address
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePersonCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePersonCommandIsNotConstructed)
}

func (c UpdatePersonCommand) PersonID() kernel.ID { return c.personID }
func (c UpdatePersonCommand) Name() string { return c.name }
func (c UpdatePersonCommand) NationalID() *string { return c.nationalID }
func (c UpdatePersonCommand) Phone() string { return c.phone }
func (c UpdatePersonCommand) Email() string { return c.email }
func (c UpdatePersonCommand) Address() AddressPayload { return c.address }
