package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// ChangePasswordCommandHandler replaces an account's password hash.
type ChangePasswordCommandHandler struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
}

// NewChangePasswordCommandHandler creates the handler.
func NewChangePasswordCommandHandler(accounts ports.AccountRepository, hasher ports.PasswordHasher) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		accounts: accounts,
		hasher:   hasher,
	}
}

// Handle runs the command.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	acc, err := h.accounts.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	if err := acc.ChangePassword(hash); err != nil {
		return err
	}

	return h.accounts.Update(ctx, acc)
}
