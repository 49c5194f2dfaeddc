package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// CloseAccountCommandHandler removes a login.
type CloseAccountCommandHandler struct {
	accounts ports.AccountRepository
}

// NewCloseAccountCommandHandler creates the handler.
func NewCloseAccountCommandHandler(accounts ports.AccountRepository) CloseAccountCommandHandler {
	return CloseAccountCommandHandler{
		accounts: accounts,
	}
}

// Handle runs the command.
func (h *CloseAccountCommandHandler) Handle(ctx context.Context, cmd CloseAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.accounts.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	return h.accounts.Delete(ctx, cmd.PersonID())
}
