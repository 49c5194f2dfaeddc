package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand registers a parcel sent by a client to a recipient.
// The recipient's current address is frozen into a destination snapshot.
type RegisterParcelCommand struct {
	senderID         kernel.ID
	recipientID      kernel.ID
	weight           kernel.Weight
	category         parcel.Category
	expectedDelivery *time.Time
	driverID         *kernel.ID

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates the command.
func NewRegisterParcelCommand(senderID, recipientID kernel.ID, weight kernel.Weight, category parcel.Category,
	expectedDelivery *time.Time, driverID *kernel.ID) (RegisterParcelCommand, error) {
	if err := senderID.Validate(); err != nil {
		return RegisterParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("senderId", err)
	}
	if err := recipientID.Validate(); err != nil {
		return RegisterParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("recipientId", err)
	}
	if err := weight.Validate(); err != nil {
		return RegisterParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	if err := category.Validate(); err != nil {
		return RegisterParcelCommand{}, err
	}
	if expectedDelivery != nil && expectedDelivery.IsZero() {
		return RegisterParcelCommand{}, errs.NewValueIsInvalidError("expectedDelivery")
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return RegisterParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}

	return RegisterParcelCommand{
		senderID:         senderID,
		recipientID:      recipientID,
		weight:           weight,
		category:         category,
		expectedDelivery: expectedDelivery,
		driverID:         driverID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

func (c RegisterParcelCommand) SenderID() kernel.ID { return c.senderID }
func (c RegisterParcelCommand) RecipientID() kernel.ID { return c.recipientID }
func (c RegisterParcelCommand) Weight() kernel.Weight { return c.weight }
func (c RegisterParcelCommand) Category() parcel.Category { return c.category }
func (c RegisterParcelCommand) ExpectedDelivery() *time.Time { return c.expectedDelivery }
func (c RegisterParcelCommand) DriverID() *kernel.ID { return c.driverID }
