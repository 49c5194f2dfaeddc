package party

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an Address that was not
// created via NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a postal address. It has no owner: people and headquarters
// reference it by id, and edits through any referrer are visible to all of
// them.
type Address struct {
	id         kernel.ID
	postalCode string
	state      string
	city       string
	district   string
	street     string
	number     string
	complement *string

	guard guard.ConstructorGuard
}

// NewAddress creates an address that has not been persisted yet; its id is
// assigned by the repository on insert.
func NewAddress(postalCode, state, city, district, street, number string, complement *string) (*Address, error) {
	a := &Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setPostalCode(postalCode),
		a.setState(state),
		a.setCity(city),
		a.setDistrict(district),
		a.setStreet(street),
		a.setNumber(number),
	); err != nil {
		return nil, err
	}

	a.complement = complement
	return a, nil
}

// RestoreAddress reconstructs a persisted address.
func RestoreAddress(id kernel.ID, postalCode, state, city, district, street, number string, complement *string) (*Address, error) {
	a, err := NewAddress(postalCode, state, city, district, street, number, complement)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	a.id = id
	return a, nil
}

// ID returns the surrogate key, zero if the address is not persisted yet.
func (a *Address) ID() kernel.ID {
	return a.id
}

func (a *Address) PostalCode() string { return a.postalCode }
func (a *Address) State() string { return a.state }
func (a *Address) City() string { return a.city }
func (a *Address) District() string { return a.district }
func (a *Address) Street() string { return a.street }
func (a *Address) Number() string { return a.number }

// Complement returns the optional address complement, nil when absent.
func (a *Address) Complement() *string {
	return a.complement
}

// AssignID records the key generated by the persistence layer on insert.
func (a *Address) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// Relocate rewrites every field of the address in place. Because addresses
// are shared, the change is visible to every person and headquarters that
// references this id.
func (a *Address) Relocate(postalCode, state, city, district, street, number string, complement *string) error {
	if err := errors.Join(
		a.setPostalCode(postalCode),
		a.setState(state),
		a.setCity(city),
		a.setDistrict(district),
		a.setStreet(street),
		a.setNumber(number),
	); err != nil {
		return err
	}

	a.complement = complement
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	a.district = district
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

// Validate checks that the address was properly constructed.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
