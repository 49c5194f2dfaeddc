package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/sequence"
)

// RenameHeadquartersCommandHandler rewrites a site and its address.
type RenameHeadquartersCommandHandler struct {
	addresses    ports.AddressRepository
	headquarters ports.HeadquartersRepository
}

// NewRenameHeadquartersCommandHandler creates the handler.
func NewRenameHeadquartersCommandHandler(addresses ports.AddressRepository, headquarters ports.HeadquartersRepository) RenameHeadquartersCommandHandler {
	return RenameHeadquartersCommandHandler{
		addresses:    addresses,
		headquarters: headquarters,
	}
}

// Handle runs the command.
func (h *RenameHeadquartersCommandHandler) Handle(ctx context.Context, cmd RenameHeadquartersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	site, err := h.headquarters.Get(ctx, cmd.HeadquartersID())
	if err != nil {
		return err
	}

	address, err := h.addresses.Get(ctx, site.AddressID())
	if err != nil {
		return err
	}

	if err := site.Rename(cmd.Name(), cmd.Kind(), cmd.Phone()); err != nil {
		return err
	}

	addr := cmd.Address()
	if err := address.Relocate(addr.PostalCode, addr.State, addr.City,
		addr.District, addr.Street, addr.Number, addr.Complement); err != nil {
		return err
	}

	result := sequence.New().
		Add(sequence.Step{
			Name: "headquarters.update",
			Run: func(ctx context.Context) error {
				return h.headquarters.Update(ctx, site)
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
