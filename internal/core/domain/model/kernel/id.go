package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ID is a surrogate key assigned by the persistence layer. The zero value is
// "not yet persisted"; any persisted entity carries a positive ID.
type ID int64

// NewID wraps a raw identifier coming from storage or user input.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// Int64 returns the raw key for parameter binding.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// IsEqual compares two IDs.
func (id ID) IsEqual(other ID) bool {
	return id == other
}
