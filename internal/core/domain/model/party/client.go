package party

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when using a Client that was not
// created via one of the client constructors.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewIndividualClient or NewCompanyClient")

// ClientKind classifies a client as an individual (PF) or a company (PJ).
type ClientKind int

const (
	// UnknownKind catches uninitialized ClientKind values.
	UnknownKind ClientKind = iota

	// Individual is a natural person (PF), carrying CPF and date of birth.
	Individual

	// Company is a legal entity (PJ), carrying CNPJ and company name.
	Company
)

func clientKindStrings() map[ClientKind]string {
	return map[ClientKind]string{
		UnknownKind: "Unknown",
		Individual:  "PF",
		Company:     "PJ",
	}
}

// ParseClientKind converts the persisted representation back to a ClientKind.
func ParseClientKind(s string) (ClientKind, error) {
	for kind, str := range clientKindStrings() {
		if str == s && kind != UnknownKind {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("clientKind", fmt.Errorf("%q is not a valid client kind", s))
}

// Validate checks that the kind is one of the two valid variants.
func (k ClientKind) Validate() error {
	if k != Individual && k != Company {
		return errs.NewValueIsInvalidErrorWithCause("clientKind", fmt.Errorf("%d is not a valid client kind", k))
	}
	return nil
}

// String implements fmt.Stringer.
func (k ClientKind) String() string {
	if s, ok := clientKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Client is a person acting as a sender of parcels. Exactly one variant's
// fields are populated: PF carries {cpf, birthDate}, PJ carries
// {cnpj, companyName}. The struct is keyed by the person's id (1:1).
type Client struct {
	personID kernel.ID
	kind     ClientKind

	// PF variant
	cpf       *string
	birthDate *time.Time

	// PJ variant
	cnpj        *string
	companyName *string

	guard guard.ConstructorGuard
}

// NewIndividualClient creates a PF client for an existing person.
func NewIndividualClient(personID kernel.ID, cpf string, birthDate time.Time) (*Client, error) {
	c := &Client{kind: Individual, guard: guard.NewConstructorGuard()}

	if err := c.setPersonID(personID); err != nil {
		return nil, err
	}
	if cpf == "" {
		return nil, errs.NewValueIsRequiredError("cpf")
	}
	if birthDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("birthDate")
	}

	c.cpf = &cpf
	c.birthDate = &birthDate
	return c, nil
}

// NewCompanyClient creates a PJ client for an existing person.
func NewCompanyClient(personID kernel.ID, cnpj, companyName string) (*Client, error) {
	c := &Client{kind: Company, guard: guard.NewConstructorGuard()}

	if err := c.setPersonID(personID); err != nil {
		return nil, err
	}
	if cnpj == "" {
		return nil, errs.NewValueIsRequiredError("cnpj")
	}
	if companyName == "" {
		return nil, errs.NewValueIsRequiredError("companyName")
	}

	c.cnpj = &cnpj
	c.companyName = &companyName
	return c, nil
}

// RestoreClient reconstructs a persisted client and re-checks the PF/PJ
// exclusivity invariant, so a corrupted row is rejected on load.
func RestoreClient(personID kernel.ID, kind ClientKind, cpf *string, birthDate *time.Time, cnpj, companyName *string) (*Client, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	hasPF := cpf != nil && birthDate != nil
	hasPJ := cnpj != nil && companyName != nil

	switch {
	case kind == Individual && hasPF && cnpj == nil && companyName == nil:
		return NewIndividualClient(personID, *cpf, *birthDate)
	case kind == Company && hasPJ && cpf == nil && birthDate == nil:
		return NewCompanyClient(personID, *cnpj, *companyName)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("client",
			fmt.Errorf("PF and PJ fields are mutually exclusive and must match kind %s", kind))
	}
}

// PersonID returns the id of the annotated person.
func (c *Client) PersonID() kernel.ID {
	return c.personID
}

// Kind returns the client variant.
func (c *Client) Kind() ClientKind {
	return c.kind
}

// CPF returns the individual's document number, nil for PJ clients.
func (c *Client) CPF() *string { return c.cpf }

// BirthDate returns the individual's date of birth, nil for PJ clients.
func (c *Client) BirthDate() *time.Time { return c.birthDate }

// CNPJ returns the company's document number, nil for PF clients.
func (c *Client) CNPJ() *string { return c.cnpj }

// CompanyName returns the company name, nil for PF clients.
func (c *Client) CompanyName() *string { return c.companyName }

func (c *Client) setPersonID(personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("personId", err)
	}
	c.personID = personID
	return nil
}

// Validate checks that the client was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}
