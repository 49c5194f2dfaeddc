package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/sequence"
)

// UpdatePersonCommandHandler rewrites a person and their address. The two
// updates are separate statements; if the address update fails after the
// person update went through, the partial change is reported.
type UpdatePersonCommandHandler struct {
	addresses ports.AddressRepository
	people    ports.PersonRepository
}

// NewUpdatePersonCommandHandler creates the handler.
func NewUpdatePersonCommandHandler(addresses ports.AddressRepository, people ports.PersonRepository) UpdatePersonCommandHandler {
	return UpdatePersonCommandHandler{
		addresses: addresses,
		people:    people,
	}
}

// Handle runs the command.
func (h *UpdatePersonCommandHandler) Handle(ctx context.Context, cmd UpdatePersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := h.people.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	address, err := h.addresses.Get(ctx, person.AddressID())
	if err != nil {
		return err
	}

	if err := person.Rename(cmd.Name(), cmd.NationalID(), cmd.Phone(), cmd.Email()); err != nil {
		return err
	}

	addr := cmd.Address()
	if err := address.Relocate(addr.PostalCode, addr.State, addr.City,
		addr.District, addr.Street, addr.Number, addr.Complement); err != nil {
		return err
	}

	result := sequence.New().
		Add(sequence.Step{
			Name: "person.update",
			Run: func(ctx context.Context) error {
				return h.people.Update(ctx, person)
			},
		}).
		Add(sequence.Step{
			Name: "address.update",
			Run: func(ctx context.Context) error {
				return h.addresses.Update(ctx, address)
			},
		}).
		Execute(ctx)

	if result.Failed() {
		return result
	}

	return nil
}
