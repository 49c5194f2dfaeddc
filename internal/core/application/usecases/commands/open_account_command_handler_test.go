package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredManager(t *testing.T, personID, headquartersID int64) *staff.Employee {
	t.Helper()
	hqID := kernel.ID(headquartersID)
	e, err := staff.RestoreEmployee(kernel.ID(personID), "39053344705", "Operations", staff.Manager, nil, &hqID)
	require.NoError(t, err)
	return e
}

func TestOpenAccountCommandHandler_Handle_ClientAccount(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(1)
	cmd, err := commands.NewOpenAccountCommand(personID, "ana", "s3cret", account.ClientRole)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockClients := new(MockClientRepository)
	mockAccounts := new(MockAccountRepository)
	mockHasher := new(MockPasswordHasher)

	mockPeople.On("Get", ctx, personID).Return(restoredPerson(t, 1, 11), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(1)).Once()
	mockClients.On("Get", ctx, personID).Return(restoredClient(t, 1), nil).Once()
	mockHasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()
	mockAccounts.On("Add", ctx, mock.AnythingOfType("*account.Account")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*account.Account)
			assert.Equal(t, "ana", a.Username())
			assert.Equal(t, "$2a$10$hash", a.PasswordHash())
			assert.Equal(t, account.ClientRole, a.Role())
		}).Return(nil).Once()

	handler := commands.NewOpenAccountCommandHandler(mockPeople, mockClients,
		new(MockEmployeeRepository), mockAccounts, mockHasher)

	// Act & Assert
	require.NoError(t, handler.Handle(ctx, cmd))
	mockAccounts.AssertExpectations(t)
	mockHasher.AssertExpectations(t)
}

func TestOpenAccountCommandHandler_Handle_SecondAccountRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(1)
	cmd, err := commands.NewOpenAccountCommand(personID, "ana", "s3cret", account.ClientRole)
	require.NoError(t, err)

	existing, err := account.RestoreAccount(personID, "ana", "$2a$10$hash", account.ClientRole)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockAccounts := new(MockAccountRepository)

	mockPeople.On("Get", ctx, personID).Return(restoredPerson(t, 1, 11), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(existing, nil).Once()

	handler := commands.NewOpenAccountCommandHandler(mockPeople, new(MockClientRepository),
		new(MockEmployeeRepository), mockAccounts, new(MockPasswordHasher))

	// Act & Assert
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrDuplicateValue)
	mockAccounts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOpenAccountCommandHandler_Handle_StaffRoleMustMatchEmployee(t *testing.T) {
	// Arrange: a Driver account for a Manager employee.
	ctx := t.Context()
	personID := kernel.ID(1)
	cmd, err := commands.NewOpenAccountCommand(personID, "ana", "s3cret", account.DriverRole)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockEmployees := new(MockEmployeeRepository)
	mockAccounts := new(MockAccountRepository)

	mockPeople.On("Get", ctx, personID).Return(restoredPerson(t, 1, 11), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(1)).Once()
	mockEmployees.On("Get", ctx, personID).Return(restoredManager(t, 1, 3), nil).Once()

	handler := commands.NewOpenAccountCommandHandler(mockPeople, new(MockClientRepository),
		mockEmployees, mockAccounts, new(MockPasswordHasher))

	// Act & Assert
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	mockAccounts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOpenAccountCommandHandler_Handle_ManagerMayHoldAdminAccount(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(1)
	cmd, err := commands.NewOpenAccountCommand(personID, "ana", "s3cret", account.AdminRole)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockEmployees := new(MockEmployeeRepository)
	mockAccounts := new(MockAccountRepository)
	mockHasher := new(MockPasswordHasher)

	mockPeople.On("Get", ctx, personID).Return(restoredPerson(t, 1, 11), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(1)).Once()
	mockEmployees.On("Get", ctx, personID).Return(restoredManager(t, 1, 3), nil).Once()
	mockHasher.On("Hash", "s3cret").Return("$2a$10$hash", nil).Once()
	mockAccounts.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once()

	handler := commands.NewOpenAccountCommandHandler(mockPeople, new(MockClientRepository),
		mockEmployees, mockAccounts, mockHasher)

	// Act & Assert
	require.NoError(t, handler.Handle(ctx, cmd))
	mockAccounts.AssertExpectations(t)
}

func TestOpenAccountCommandHandler_Handle_ClientRoleNeedsClientRow(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(1)
	cmd, err := commands.NewOpenAccountCommand(personID, "ana", "s3cret", account.ClientRole)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockClients := new(MockClientRepository)
	mockAccounts := new(MockAccountRepository)

	mockPeople.On("Get", ctx, personID).Return(restoredPerson(t, 1, 11), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(1)).Once()
	mockClients.On("Get", ctx, personID).Return(nil, kernelNotFound(1)).Once()

	handler := commands.NewOpenAccountCommandHandler(mockPeople, mockClients,
		new(MockEmployeeRepository), mockAccounts, new(MockPasswordHasher))

	// Act & Assert
	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	mockAccounts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
