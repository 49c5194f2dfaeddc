package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand replaces an account's password.
type ChangePasswordCommand struct {
	personID kernel.ID
	password string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates the command.
func NewChangePasswordCommand(personID kernel.ID, password string) (ChangePasswordCommand, error) {
	if err := personID.Validate(); err != nil {
		return ChangePasswordCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	if password == "" {
		return ChangePasswordCommand{}, errs.NewValueIsRequiredError("password")
	}

	return ChangePasswordCommand{
		personID: personID,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) PersonID() kernel.ID { return c.personID }
func (c ChangePasswordCommand) Password() string { return c.password }
