package parcel

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrSnapshotIsNotConstructed is returned when using a TrackingSnapshot that
// was not created via NewSnapshotForRecipient or RestoreSnapshot.
var ErrSnapshotIsNotConstructed = errors.New("TrackingSnapshot must be created via NewSnapshotForRecipient constructor")

// TrackingSnapshot is the delivery destination frozen at registration time:
// the recipient's name, document and phone plus their address, copied so
// later edits to the live person or shared address do not move a parcel that
// is already in flight. Snapshots are immutable.
type TrackingSnapshot struct {
	id             kernel.ID
	recipientName  string
	recipientCPF   *string
	recipientPhone string
	postalCode     string
	state          string
	city           string
	district       string
	street         string
	number         string
	complement     *string

	guard guard.ConstructorGuard
}

// NewSnapshotForRecipient copies the recipient's current contact data and
// address into a fresh snapshot. The snapshot's id is assigned by the
// repository on insert.
func NewSnapshotForRecipient(recipient *party.Person, a *party.Address) (*TrackingSnapshot, error) {
	if err := recipient.Validate(); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return &TrackingSnapshot{
		recipientName:  recipient.Name(),
		recipientCPF:   recipient.NationalID(),
		recipientPhone: recipient.Phone(),
		postalCode:     a.PostalCode(),
		state:          a.State(),
		city:           a.City(),
		district:       a.District(),
		street:         a.Street(),
		number:         a.Number(),
		complement:     a.Complement(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreSnapshot reconstructs a persisted snapshot.
func RestoreSnapshot(id kernel.ID, recipientName string, recipientCPF *string, recipientPhone string,
	postalCode, state, city, district, street, number string, complement *string) (*TrackingSnapshot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if recipientName == "" || recipientPhone == "" {
		return nil, errs.NewValueIsRequiredError("recipient")
	}
	if postalCode == "" || state == "" || city == "" || district == "" || street == "" || number == "" {
		return nil, errs.NewValueIsRequiredError("snapshot")
	}

	return &TrackingSnapshot{
		id:             id,
		recipientName:  recipientName,
		recipientCPF:   recipientCPF,
		recipientPhone: recipientPhone,
		postalCode:     postalCode,
		state:          state,
		city:           city,
		district:       district,
		street:         street,
		number:         number,
		complement:     complement,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ID returns the surrogate key, zero if not persisted yet.
func (s *TrackingSnapshot) ID() kernel.ID {
	return s.id
}

func (s *TrackingSnapshot) RecipientName() string { return s.recipientName }
func (s *TrackingSnapshot) RecipientPhone() string { return s.recipientPhone }
func (s *TrackingSnapshot) PostalCode() string { return s.postalCode }
func (s *TrackingSnapshot) State() string { return s.state }
func (s *TrackingSnapshot) City() string { return s.city }
func (s *TrackingSnapshot) District() string { return s.district }
func (s *TrackingSnapshot) Street() string { return s.street }
func (s *TrackingSnapshot) Number() string { return s.number }

// RecipientCPF returns the recipient's document at registration, nil when
// the person had none on file.
func (s *TrackingSnapshot) RecipientCPF() *string {
	return s.recipientCPF
}

// Complement returns the optional complement, nil when absent.
func (s *TrackingSnapshot) Complement() *string {
	return s.complement
}

// AssignID records the key generated by the persistence layer on insert.
func (s *TrackingSnapshot) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// Validate checks that the snapshot was properly constructed.
func (s *TrackingSnapshot) Validate() error {
	if s == nil {
		return ErrSnapshotIsNotConstructed
	}
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}
