package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreatePersonCommandIsNotConstructed = errors.New(
	"CreatePersonCommand must be created via NewCreatePersonCommand constructor",
)

// CreatePersonCommand registers a person together with a fresh address.
type CreatePersonCommand struct {
	name       string
	nationalID *string
	phone      string
	email      string
	address    AddressPayload

	guard guard.ConstructorGuard
}

// NewCreatePersonCommand creates the command. The address payload is
// validated later, when the domain Address is constructed.
func NewCreatePersonCommand(name string, nationalID *string, phone, email string, address AddressPayload) (CreatePersonCommand, error) {
	command := CreatePersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPhone(phone),
		command.setEmail(email),
	); err != nil {
		return CreatePersonCommand{}, err
	}

	command.nationalID = nationalID
	command.address = address
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePersonCommand) Validate() error {
	return c.guard.Validate(ErrCreatePersonCommandIsNotConstructed)
}

func (c CreatePersonCommand) Name() string { return c.name }
func (c CreatePersonCommand) NationalID() *string { return c.nationalID }
func (c CreatePersonCommand) Phone() string { return c.phone }
func (c CreatePersonCommand) Email() string { return c.email }
func (c CreatePersonCommand) Address() AddressPayload { return c.address }

func (c *CreatePersonCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreatePersonCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreatePersonCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
