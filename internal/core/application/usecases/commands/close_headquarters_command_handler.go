package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CloseHeadquartersCommandHandler closes a site after probing for employees
// still assigned to it.
type CloseHeadquartersCommandHandler struct {
	addresses    ports.AddressRepository
	headquarters ports.HeadquartersRepository
	integrity    ports.IntegrityGuard
}

// NewCloseHeadquartersCommandHandler creates the handler.
func NewCloseHeadquartersCommandHandler(addresses ports.AddressRepository, headquarters ports.HeadquartersRepository, integrity ports.IntegrityGuard) CloseHeadquartersCommandHandler {
	return CloseHeadquartersCommandHandler{
		addresses:    addresses,
		headquarters: headquarters,
		integrity:    integrity,
	}
}

// Handle runs the command.
func (h *CloseHeadquartersCommandHandler) Handle(ctx context.Context, cmd CloseHeadquartersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	site, err := h.headquarters.Get(ctx, cmd.HeadquartersID())
	if err != nil {
		return err
	}

	referenced, err := h.integrity.Refers(ctx, ports.EmployeeByHeadquarters, cmd.HeadquartersID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectInUseError("headquartersId", cmd.HeadquartersID(), ports.EmployeeByHeadquarters.String())
	}

	if err := h.headquarters.Delete(ctx, cmd.HeadquartersID()); err != nil {
		return err
	}

	return h.deleteAddressIfOrphaned(ctx, site.AddressID())
}

func (h *CloseHeadquartersCommandHandler) deleteAddressIfOrphaned(ctx context.Context, addressID kernel.ID) error {
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
