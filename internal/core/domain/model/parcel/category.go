package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Category is the handling class of a parcel.
type Category int

const (
	// UnknownCategory catches uninitialized values.
	UnknownCategory Category = iota

	// Common needs no special handling.
	Common

	// Fragile must be handled with care.
	Fragile

	// Perishable is time-sensitive cargo.
	Perishable
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		Common:          "Common",
		Fragile:         "Fragile",
		Perishable:      "Perishable",
	}
}

// ParseCategory converts the persisted representation back to a Category.
func ParseCategory(s string) (Category, error) {
	for c, str := range categoryStrings() {
		if str == s && c != UnknownCategory {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks the category is one of the valid values.
func (c Category) Validate() error {
	switch c {
	case Common, Fragile, Perishable:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%d is not a valid category", c))
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if s, ok := categoryStrings()[c]; ok {
		return s
	}
	return "Unknown"
}
