package commands

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RemoveClientCommandHandler drops a client registration. Blocked while the
// person still appears as a parcel sender or holds a client account.
type RemoveClientCommandHandler struct {
	clients   ports.ClientRepository
	accounts  ports.AccountRepository
	integrity ports.IntegrityGuard
}

// NewRemoveClientCommandHandler creates the handler.
func NewRemoveClientCommandHandler(clients ports.ClientRepository, accounts ports.AccountRepository, integrity ports.IntegrityGuard) RemoveClientCommandHandler {
	return RemoveClientCommandHandler{
		clients:   clients,
		accounts:  accounts,
		integrity: integrity,
	}
}

// Handle runs the command.
func (h *RemoveClientCommandHandler) Handle(ctx context.Context, cmd RemoveClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.clients.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	referenced, err := h.integrity.Refers(ctx, ports.ParcelBySender, cmd.PersonID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectInUseError("personId", cmd.PersonID(), ports.ParcelBySender.String())
	}

	// A client-role login depends on the registration being removed here.
	acc, err := h.accounts.Get(ctx, cmd.PersonID())
	switch {
	case err == nil:
		if !acc.Role().IsStaff() {
			return errs.NewObjectInUseError("personId", cmd.PersonID(), ports.AccountByPerson.String())
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	return h.clients.Delete(ctx, cmd.PersonID())
}
