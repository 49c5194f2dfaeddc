package commands

import (
	"context"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/sequence"
)

// OpenHeadquartersCommandHandler opens a site and its dedicated address.
// Like person creation, a failed site insert leaves the address row behind
// and reports it.
type OpenHeadquartersCommandHandler struct {
	addresses    ports.AddressRepository
	headquarters ports.HeadquartersRepository
}

// NewOpenHeadquartersCommandHandler creates the handler.
func NewOpenHeadquartersCommandHandler(addresses ports.AddressRepository, headquarters ports.HeadquartersRepository) OpenHeadquartersCommandHandler {
	return OpenHeadquartersCommandHandler{
		addresses:    addresses,
		headquarters: headquarters,
	}
}

// Handle runs the command and returns the new site's id.
func (h *OpenHeadquartersCommandHandler) Handle(ctx context.Context, cmd OpenHeadquartersCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	addr := cmd.Address()
	address, err := party.NewAddress(addr.PostalCode, addr.State, addr.City,
		addr.District, addr.Street, addr.Number, addr.Complement)
	if err != nil {
		return 0, err
	}

	var site *depot.Headquarters

	result := sequence.New().
		Add(sequence.Step{
			Name: "address.add",
			Run: func(ctx context.Context) error {
				return h.addresses.Add(ctx, address)
			},
		}).
		Add(sequence.Step{
			Name: "headquarters.add",
			Run: func(ctx context.Context) error {
				s, err := depot.NewHeadquarters(cmd.Name(), cmd.Kind(), cmd.Phone(), address.ID())
				if err != nil {
					return err
				}
				site = s
				return h.headquarters.Add(ctx, site)
			},
		}).
		Execute(ctx)

	if result.Failed() {
		return 0, result
	}

	return site.ID(), nil
}
