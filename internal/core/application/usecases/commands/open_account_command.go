package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrOpenAccountCommandIsNotConstructed = errors.New(
	"OpenAccountCommand must be created via NewOpenAccountCommand constructor",
)

// OpenAccountCommand opens a login for a registered person. The password
// arrives in plain text here and is hashed by the handler before anything
// is persisted.
type OpenAccountCommand struct {
	personID kernel.ID
	username string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewOpenAccountCommand creates the command.
func NewOpenAccountCommand(personID kernel.ID, username, password string, role account.Role) (OpenAccountCommand, error) {
	if err := personID.Validate(); err != nil {
		return OpenAccountCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	if username == "" {
		return OpenAccountCommand{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return OpenAccountCommand{}, errs.NewValueIsRequiredError("password")
	}
	if err := role.Validate(); err != nil {
		return OpenAccountCommand{}, err
	}

	return OpenAccountCommand{
		personID: personID,
		username: username,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenAccountCommand) Validate() error {
	return c.guard.Validate(ErrOpenAccountCommandIsNotConstructed)
}

func (c OpenAccountCommand) PersonID() kernel.ID { return c.personID }
func (c OpenAccountCommand) Username() string { return c.username }
func (c OpenAccountCommand) Password() string { return c.password }
func (c OpenAccountCommand) Role() account.Role { return c.role }
