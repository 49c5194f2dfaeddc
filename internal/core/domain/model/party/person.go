package party

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPersonIsNotConstructed is returned when using a Person that was not
// created via NewPerson or RestorePerson.
var ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")

// Person is an individual registered in the system. Every person references
// exactly one Address; the address itself may be shared with other referrers.
type Person struct {
	id         kernel.ID
	name       string
	nationalID *string
	phone      string
	email      string
	addressID  kernel.ID

	guard guard.ConstructorGuard
}

// NewPerson creates a person referencing an already-persisted address.
// The person's own id is assigned by the repository on insert.
func NewPerson(name string, nationalID *string, phone, email string, addressID kernel.ID) (*Person, error) {
	p := &Person{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setPhone(phone),
		p.setEmail(email),
		p.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	p.nationalID = nationalID
	return p, nil
}

// RestorePerson reconstructs a persisted person.
func RestorePerson(id kernel.ID, name string, nationalID *string, phone, email string, addressID kernel.ID) (*Person, error) {
	p, err := NewPerson(name, nationalID, phone, email, addressID)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// IsEqual compares two people by identity.
func (p *Person) IsEqual(other *Person) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the surrogate key, zero if not persisted yet.
func (p *Person) ID() kernel.ID {
	return p.id
}

func (p *Person) Name() string { return p.name }
func (p *Person) Phone() string { return p.phone }
func (p *Person) Email() string { return p.email }

// NationalID returns the optional identity document number, nil when absent.
func (p *Person) NationalID() *string {
	return p.nationalID
}

// AddressID returns the id of the referenced shared address.
func (p *Person) AddressID() kernel.ID {
	return p.addressID
}

// AssignID records the key generated by the persistence layer on insert.
func (p *Person) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// Rename updates the person's contact fields. Unset values are handled by the
// caller, which passes the previous values through; the linked address is
// updated separately via Address.Relocate.
func (p *Person) Rename(name string, nationalID *string, phone, email string) error {
	if err := errors.Join(
		p.setName(name),
		p.setPhone(phone),
		p.setEmail(email),
	); err != nil {
		return err
	}

	p.nationalID = nationalID
	return nil
}

func (p *Person) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Person) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Person) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Person) setAddressID(addressID kernel.ID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("addressId", err)
	}
	p.addressID = addressID
	return nil
}

// Validate checks that the person was properly constructed.
func (p *Person) Validate() error {
	if p == nil {
		return ErrPersonIsNotConstructed
	}
	return p.guard.Validate(ErrPersonIsNotConstructed)
}
