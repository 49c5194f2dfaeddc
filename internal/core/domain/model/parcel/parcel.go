// Package parcel holds the Parcel aggregate: the tracked unit of cargo, its
// lifecycle status, and the destination snapshot frozen at registration.
package parcel

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when using a Parcel that was not
// created via NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is a registered unit of cargo. Sender, recipient, tracking code and
// destination snapshot are fixed at registration; weight, category, status,
// expected delivery and the assigned driver may be corrected afterwards.
type Parcel struct {
	id               kernel.ID
	trackingCode     TrackingCode
	senderID         kernel.ID
	recipientID      kernel.ID
	snapshotID       kernel.ID
	weight           kernel.Weight
	category         Category
	status           Status
	registeredAt     time.Time
	expectedDelivery *time.Time
	driverID         *kernel.ID

	guard guard.ConstructorGuard
}

// NewParcel registers a parcel. The sender must be a client, the recipient
// any person, and the snapshot the just-created copy of the recipient's
// address. The expected delivery date and the driver are optional at
// registration. The tracking code is issued from the registration instant.
func NewParcel(senderID, recipientID, snapshotID kernel.ID, weight kernel.Weight, category Category,
	registeredAt time.Time, expectedDelivery *time.Time, driverID *kernel.ID) (*Parcel, error) {
	p := &Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setSenderID(senderID),
		p.setRecipientID(recipientID),
		p.setSnapshotID(snapshotID),
		p.setWeight(weight),
		p.setCategory(category),
		p.setExpectedDelivery(expectedDelivery),
		p.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	if registeredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("registeredAt")
	}

	p.status = Processing
	p.registeredAt = registeredAt
	p.trackingCode = NewTrackingCode(registeredAt)
	return p, nil
}

// RestoreParcel reconstructs a persisted parcel.
func RestoreParcel(id kernel.ID, trackingCode TrackingCode, senderID, recipientID, snapshotID kernel.ID,
	weight kernel.Weight, category Category, status Status, registeredAt time.Time,
	expectedDelivery *time.Time, driverID *kernel.ID) (*Parcel, error) {
	p := &Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		trackingCode.Validate(),
		p.setSenderID(senderID),
		p.setRecipientID(recipientID),
		p.setSnapshotID(snapshotID),
		p.setWeight(weight),
		p.setCategory(category),
		p.setExpectedDelivery(expectedDelivery),
		p.setDriverID(driverID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.id = id
	p.trackingCode = trackingCode
	p.status = status
	p.registeredAt = registeredAt
	return p, nil
}

// ID returns the surrogate key, zero if not persisted yet.
func (p *Parcel) ID() kernel.ID {
	return p.id
}

// TrackingCode returns the public label identifier.
func (p *Parcel) TrackingCode() TrackingCode {
	return p.trackingCode
}

// SenderID returns the sending client's person id.
func (p *Parcel) SenderID() kernel.ID { return p.senderID }

// RecipientID returns the receiving person's id.
func (p *Parcel) RecipientID() kernel.ID { return p.recipientID }

// SnapshotID returns the id of the frozen destination snapshot.
func (p *Parcel) SnapshotID() kernel.ID { return p.snapshotID }

func (p *Parcel) Weight() kernel.Weight { return p.weight }
func (p *Parcel) Category() Category { return p.category }
func (p *Parcel) Status() Status { return p.status }
func (p *Parcel) RegisteredAt() time.Time { return p.registeredAt }

// ExpectedDelivery returns the promised delivery date, nil when none was set.
func (p *Parcel) ExpectedDelivery() *time.Time { return p.expectedDelivery }

// DriverID returns the assigned driver's person id, nil when unassigned.
func (p *Parcel) DriverID() *kernel.ID { return p.driverID }

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// AssignID records the key generated by the persistence layer on insert.
func (p *Parcel) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// Correct updates the mutable attributes. Sender, recipient, tracking code
// and snapshot never change after registration. Passing nil clears the
// expected delivery date or unassigns the driver.
func (p *Parcel) Correct(weight kernel.Weight, category Category, expectedDelivery *time.Time, driverID *kernel.ID) error {
	return errors.Join(
		p.setWeight(weight),
		p.setCategory(category),
		p.setExpectedDelivery(expectedDelivery),
		p.setDriverID(driverID),
	)
}

// ChangeStatus moves the parcel to the given status under the given policy.
func (p *Parcel) ChangeStatus(to Status, policy TransitionPolicy) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !policy.CanTransition(p.status, to) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", p.status, to))
	}
	p.status = to
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.ID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("senderId", err)
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setRecipientID(recipientID kernel.ID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipientId", err)
	}
	p.recipientID = recipientID
	return nil
}

func (p *Parcel) setSnapshotID(snapshotID kernel.ID) error {
	if err := snapshotID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("snapshotId", err)
	}
	p.snapshotID = snapshotID
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Parcel) setExpectedDelivery(expectedDelivery *time.Time) error {
	if expectedDelivery != nil && expectedDelivery.IsZero() {
		return errs.NewValueIsInvalidError("expectedDelivery")
	}
	p.expectedDelivery = expectedDelivery
	return nil
}

func (p *Parcel) setDriverID(driverID *kernel.ID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}
	p.driverID = driverID
	return nil
}

// Validate checks that the parcel was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}
