package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Weight is a mass in kilograms. Parcel weights and vehicle capacities must
// be strictly positive.
type Weight float64

// NewWeight validates and wraps a weight in kilograms.
func NewWeight(kg float64) (Weight, error) {
	w := Weight(kg)
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

// Validate checks that the weight is strictly positive.
func (w Weight) Validate() error {
	if w <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%.2f is not greater than 0", float64(w)))
	}
	return nil
}

// KG returns the weight as a raw float for arithmetic and binding.
func (w Weight) KG() float64 {
	return float64(w)
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return fmt.Sprintf("%.2fkg", float64(w))
}
