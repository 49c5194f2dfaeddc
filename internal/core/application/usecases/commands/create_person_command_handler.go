package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/sequence"
)

// CreatePersonCommandHandler registers a person and the address they live
// at. The address is inserted first; if the person insert then fails, the
// address row stays behind and is reported as kept, not silently dropped.
type CreatePersonCommandHandler struct {
	addresses ports.AddressRepository
	people    ports.PersonRepository
}

// NewCreatePersonCommandHandler creates the handler.
func NewCreatePersonCommandHandler(addresses ports.AddressRepository, people ports.PersonRepository) CreatePersonCommandHandler {
	return CreatePersonCommandHandler{
		addresses: addresses,
		people:    people,
	}
}

// Handle runs the command and returns the new person's id.
func (h *CreatePersonCommandHandler) Handle(ctx context.Context, cmd CreatePersonCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	addr := cmd.Address()
	address, err := party.NewAddress(addr.PostalCode, addr.State, addr.City,
		addr.District, addr.Street, addr.Number, addr.Complement)
	if err != nil {
		return 0, err
	}

	var person *party.Person

	result := sequence.New().
		Add(sequence.Step{
			Name: "address.add",
			Run: func(ctx context.Context) error {
				return h.addresses.Add(ctx, address)
			},
		}).
		Add(sequence.Step{
			Name: "person.add",
			Run: func(ctx context.Context) error {
				p, err := party.NewPerson(cmd.Name(), cmd.NationalID(), cmd.Phone(), cmd.Email(), address.ID())
				if err != nil {
					return err
				}
				person = p
				return h.people.Add(ctx, person)
			},
		}).
		Execute(ctx)

	if result.Failed() {
		return 0, result
	}

	return person.ID(), nil
}
