package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// personBlockers are the edges that must be clear before a person can go.
var personBlockers = []ports.Dependency{
	ports.AccountByPerson,
	ports.ClientByPerson,
	ports.EmployeeByPerson,
	ports.ParcelBySender,
	ports.ParcelByRecipient,
}

// DeletePersonCommandHandler removes a person after probing every edge that
// could reference them. The person's address is removed too, but only when
// no other person or headquarters shares it.
type DeletePersonCommandHandler struct {
	addresses ports.AddressRepository
	people    ports.PersonRepository
	integrity ports.IntegrityGuard
}

// NewDeletePersonCommandHandler creates the handler.
func NewDeletePersonCommandHandler(addresses ports.AddressRepository, people ports.PersonRepository, integrity ports.IntegrityGuard) DeletePersonCommandHandler {
	return DeletePersonCommandHandler{
		addresses: addresses,
		people:    people,
		integrity: integrity,
	}
}

// Handle runs the command.
func (h *DeletePersonCommandHandler) Handle(ctx context.Context, cmd DeletePersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := h.people.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	for _, dep := range personBlockers {
		referenced, err := h.integrity.Refers(ctx, dep, cmd.PersonID())
		if err != nil {
			return err
		}
		if referenced {
			return errs.NewObjectInUseError("personId", cmd.PersonID(), dep.String())
		}
	}

	if err := h.people.Delete(ctx, cmd.PersonID()); err != nil {
		return err
	}

	return h.deleteAddressIfOrphaned(ctx, person.AddressID())
}

// deleteAddressIfOrphaned drops the address when the deleted person was its
// last referrer.
func (h *DeletePersonCommandHandler) deleteAddressIfOrphaned(ctx context.Context, addressID kernel.ID) error {
	for _, dep := range []ports.Dependency{ports.PersonByAddress, ports.HeadquartersByAddress} {
		referenced, err := h.integrity.Refers(ctx, dep, addressID)
		if err != nil {
			return err
		}
		if referenced {
			return nil
		}
	}

	return h.addresses.Delete(ctx, addressID)
}
