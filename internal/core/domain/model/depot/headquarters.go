// Package depot holds the Headquarters entity, the physical sites employees
// are assigned to.
package depot

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrHeadquartersIsNotConstructed is returned when using a Headquarters that
// was not created via NewHeadquarters or RestoreHeadquarters.
var ErrHeadquartersIsNotConstructed = errors.New("Headquarters must be created via NewHeadquarters constructor")

// Kind classifies what a site is used for.
type Kind int

const (
	// UnknownKind catches uninitialized values.
	UnknownKind Kind = iota

	// Distribution is a distribution center.
	Distribution

	// Store is a customer-facing store.
	Store

	// Hybrid serves as both distribution center and store.
	Hybrid
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "Unknown",
		Distribution: "Distribution",
		Store:        "Store",
		Hybrid:       "Hybrid",
	}
}

// ParseKind converts the persisted representation back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, str := range kindStrings() {
		if str == s && k != UnknownKind {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid headquarters kind", s))
}

// Validate checks the kind is one of the valid values.
func (k Kind) Validate() error {
	if k != Distribution && k != Store && k != Hybrid {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid headquarters kind", k))
	}
	return nil
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Headquarters is a company site. Each site owns a dedicated address that is
// created together with it, unlike person addresses which may be shared.
type Headquarters struct {
	id        kernel.ID
	name      string
	kind      Kind
	phone     string
	addressID kernel.ID

	guard guard.ConstructorGuard
}

// NewHeadquarters creates a site referencing an already-persisted address.
// The site's own id is assigned by the repository on insert.
func NewHeadquarters(name string, kind Kind, phone string, addressID kernel.ID) (*Headquarters, error) {
	h := &Headquarters{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		h.setName(name),
		h.setKind(kind),
		h.setPhone(phone),
		h.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHeadquarters reconstructs a persisted site.
func RestoreHeadquarters(id kernel.ID, name string, kind Kind, phone string, addressID kernel.ID) (*Headquarters, error) {
	h, err := NewHeadquarters(name, kind, phone, addressID)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	h.id = id
	return h, nil
}

// ID returns the surrogate key, zero if not persisted yet.
func (h *Headquarters) ID() kernel.ID {
	return h.id
}

func (h *Headquarters) Name() string { return h.name }
func (h *Headquarters) Kind() Kind { return h.kind }
func (h *Headquarters) Phone() string { return h.phone }

// AddressID returns the id of the site's dedicated address.
func (h *Headquarters) AddressID() kernel.ID {
	return h.addressID
}

// AssignID records the key generated by the persistence layer on insert.
func (h *Headquarters) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

// Rename updates the site's name, kind and phone. The address is edited
// separately via Address.Relocate.
func (h *Headquarters) Rename(name string, kind Kind, phone string) error {
	return errors.Join(
		h.setName(name),
		h.setKind(kind),
		h.setPhone(phone),
	)
}

func (h *Headquarters) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}

func (h *Headquarters) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	h.phone = phone
	return nil
}

func (h *Headquarters) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	h.kind = kind
	return nil
}

func (h *Headquarters) setAddressID(addressID kernel.ID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("addressId", err)
	}
	h.addressID = addressID
	return nil
}

// Validate checks that the site was properly constructed.
func (h *Headquarters) Validate() error {
	if h == nil {
		return ErrHeadquartersIsNotConstructed
	}
	return h.guard.Validate(ErrHeadquartersIsNotConstructed)
}
