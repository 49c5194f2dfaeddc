// Package fleet holds the Vehicle entity. Vehicles are keyed by their plate
// and carry the load capacity that bounds shipment packing.
package fleet

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when using a Vehicle that was not
// created via NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Availability is the operational status of a vehicle.
type Availability int

const (
	// UnknownAvailability catches uninitialized values.
	UnknownAvailability Availability = iota

	// Available means the vehicle can be assigned and loaded.
	Available

	// Unavailable means the vehicle is out of service.
	Unavailable
)

func availabilityStrings() map[Availability]string {
	return map[Availability]string{
		UnknownAvailability: "Unknown",
		Available:           "Available",
		Unavailable:         "Unavailable",
	}
}

// ParseAvailability converts the persisted representation back to an
// Availability.
func ParseAvailability(s string) (Availability, error) {
	for a, str := range availabilityStrings() {
		if str == s && a != UnknownAvailability {
			return a, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid availability", s))
}

// Validate checks the availability is one of the valid values.
func (a Availability) Validate() error {
	if a != Available && a != Unavailable {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String implements fmt.Stringer.
func (a Availability) String() string {
	if s, ok := availabilityStrings()[a]; ok {
		return s
	}
	return "Unknown"
}

// Plate is a vehicle's license plate, the natural key of the fleet.
type Plate string

// NewPlate normalizes and validates a plate. Plates are stored uppercase.
func NewPlate(raw string) (Plate, error) {
	p := Plate(strings.ToUpper(strings.TrimSpace(raw)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks the plate is non-empty and of plausible length.
func (p Plate) Validate() error {
	if p == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	if len(p) < 5 || len(p) > 10 {
		return errs.NewValueIsInvalidErrorWithCause("plate",
			fmt.Errorf("%q must be between 5 and 10 characters", string(p)))
	}
	return nil
}

// String implements fmt.Stringer.
func (p Plate) String() string {
	return string(p)
}

// Vehicle is a truck or van in the fleet. At most one employee (a driver)
// references it at a time, and any number of shipment entries may.
type Vehicle struct {
	plate        Plate
	capacity     kernel.Weight
	vehicleType  string
	availability Availability

	guard guard.ConstructorGuard
}

// NewVehicle creates a vehicle.
func NewVehicle(plate Plate, capacity kernel.Weight, vehicleType string, availability Availability) (*Vehicle, error) {
	v := &Vehicle{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		v.setPlate(plate),
		v.setCapacity(capacity),
		v.setVehicleType(vehicleType),
		v.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a persisted vehicle. Vehicles carry no
// surrogate key, so restore and create coincide.
func RestoreVehicle(plate Plate, capacity kernel.Weight, vehicleType string, availability Availability) (*Vehicle, error) {
	return NewVehicle(plate, capacity, vehicleType, availability)
}

// Plate returns the vehicle's natural key.
func (v *Vehicle) Plate() Plate {
	return v.plate
}

// Capacity returns the maximum load the vehicle supports.
func (v *Vehicle) Capacity() kernel.Weight {
	return v.capacity
}

// VehicleType returns the free-form vehicle type (e.g. "Truck", "Van").
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// Availability returns the vehicle's operational status.
func (v *Vehicle) Availability() Availability {
	return v.availability
}

// Refit updates the mutable attributes; the plate is immutable.
func (v *Vehicle) Refit(capacity kernel.Weight, vehicleType string, availability Availability) error {
	return errors.Join(
		v.setCapacity(capacity),
		v.setVehicleType(vehicleType),
		v.setAvailability(availability),
	)
}

func (v *Vehicle) setPlate(plate Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacity kernel.Weight) error {
	if err := capacity.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("capacity", err)
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	v.availability = availability
	return nil
}

// Validate checks that the vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}
