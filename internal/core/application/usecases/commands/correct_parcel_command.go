package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCorrectParcelCommandIsNotConstructed = errors.New(
	"CorrectParcelCommand must be created via NewCorrectParcelCommand constructor",
)

// CorrectParcelCommand fixes a parcel's weight, category, status, expected
// delivery date and driver assignment. Sender, recipient and destination
// snapshot cannot be changed; a wrong destination means cancelling and
// re-registering the parcel.
type CorrectParcelCommand struct {
	parcelID         kernel.ID
	weight           kernel.Weight
	category         parcel.Category
	status           parcel.Status
	expectedDelivery *time.Time
	driverID         *kernel.ID

	guard guard.ConstructorGuard
}

// NewCorrectParcelCommand creates the command.
func NewCorrectParcelCommand(parcelID kernel.ID, weight kernel.Weight, category parcel.Category,
	status parcel.Status, expectedDelivery *time.Time, driverID *kernel.ID) (CorrectParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CorrectParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("parcelId", err)
	}
	if err := weight.Validate(); err != nil {
		return CorrectParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	if err := category.Validate(); err != nil {
		return CorrectParcelCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return CorrectParcelCommand{}, err
	}
	if expectedDelivery != nil && expectedDelivery.IsZero() {
		return CorrectParcelCommand{}, errs.NewValueIsInvalidError("expectedDelivery")
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return CorrectParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}

	return CorrectParcelCommand{
		parcelID:         parcelID,
		weight:           weight,
		category:         category,
		status:           status,
		expectedDelivery: expectedDelivery,
		driverID:         driverID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CorrectParcelCommand) Validate() error {
	return c.guard.Validate(ErrCorrectParcelCommandIsNotConstructed)
}

func (c CorrectParcelCommand) ParcelID() kernel.ID { return c.parcelID }
func (c CorrectParcelCommand) Weight() kernel.Weight { return c.weight }
func (c CorrectParcelCommand) Category() parcel.Category { return c.category }
func (c CorrectParcelCommand) Status() parcel.Status { return c.status }
func (c CorrectParcelCommand) ExpectedDelivery() *time.Time { return c.expectedDelivery }
func (c CorrectParcelCommand) DriverID() *kernel.ID { return c.driverID }
