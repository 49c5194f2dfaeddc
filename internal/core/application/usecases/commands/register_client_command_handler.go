package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterClientCommandHandler marks a person as a client. The person must
// exist and must not already be a client.
type RegisterClientCommandHandler struct {
	people  ports.PersonRepository
	clients ports.ClientRepository
}

// NewRegisterClientCommandHandler creates the handler.
func NewRegisterClientCommandHandler(people ports.PersonRepository, clients ports.ClientRepository) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		people:  people,
		clients: clients,
	}
}

// Handle runs the command.
func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.people.Get(ctx, cmd.PersonID()); err != nil {
		return err
	}

	if _, err := h.clients.Get(ctx, cmd.PersonID()); err == nil {
		return errs.NewDuplicateValueError("personId", cmd.PersonID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	var client *party.Client
	var err error
	switch cmd.Kind() {
	case party.Individual:
		client, err = party.NewIndividualClient(cmd.PersonID(), *cmd.CPF(), *cmd.BirthDate())
	case party.Company:
		client, err = party.NewCompanyClient(cmd.PersonID(), *cmd.CNPJ(), *cmd.CompanyName())
	default:
		err = cmd.Kind().Validate()
	}
	if err != nil {
		return err
	}

	return h.clients.Add(ctx, client)
}
