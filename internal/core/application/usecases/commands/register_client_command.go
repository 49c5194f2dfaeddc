package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterIndividualClientCommand or NewRegisterCompanyClientCommand",
)

// RegisterClientCommand marks an existing person as a client, either as an
// individual (CPF and birth date) or a company (CNPJ and company name).
type RegisterClientCommand struct {
	personID kernel.ID
	kind     party.ClientKind

	cpf       *string
	birthDate *time.Time

	cnpj        *string
	companyName *string

	guard guard.ConstructorGuard
}

// NewRegisterIndividualClientCommand creates the PF variant of the command.
func NewRegisterIndividualClientCommand(personID kernel.ID, cpf string, birthDate time.Time) (RegisterClientCommand, error) {
	if err := personID.Validate(); err != nil {
		return RegisterClientCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	if cpf == "" {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("cpf")
	}
	if birthDate.IsZero() {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("birthDate")
	}

	return RegisterClientCommand{
		personID:  personID,
		kind:      party.Individual,
		cpf:       &cpf,
		birthDate: &birthDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewRegisterCompanyClientCommand creates the PJ variant of the command.
func NewRegisterCompanyClientCommand(personID kernel.ID, cnpj, companyName string) (RegisterClientCommand, error) {
	if err := personID.Validate(); err != nil {
		return RegisterClientCommand{}, errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	if cnpj == "" {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("cnpj")
	}
	if companyName == "" {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("companyName")
	}

	return RegisterClientCommand{
		personID:    personID,
		kind:        party.Company,
		cnpj:        &cnpj,
		companyName: &companyName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) PersonID() kernel.ID { return c.personID }
func (c RegisterClientCommand) Kind() party.ClientKind { return c.kind }
func (c RegisterClientCommand) CPF() *string { return c.cpf }
func (c RegisterClientCommand) BirthDate() *time.Time { return c.birthDate }
func (c RegisterClientCommand) CNPJ() *string { return c.cnpj }
func (c RegisterClientCommand) CompanyName() *string { return c.companyName }
