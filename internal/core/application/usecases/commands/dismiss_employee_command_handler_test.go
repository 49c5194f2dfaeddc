package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestDismissEmployeeCommandHandler_Handle_DismissesEmployee(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(7)
	cmd, err := commands.NewDismissEmployeeCommand(personID)
	require.NoError(t, err)

	mockEmployees := new(MockEmployeeRepository)
	mockAccounts := new(MockAccountRepository)
	mockGuard := new(MockIntegrityGuard)

	mockEmployees.On("Get", ctx, personID).Return(restoredManager(t, 7, 3), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(7)).Once()
	mockGuard.On("Refers", ctx, ports.ParcelByDriver, personID).Return(false, nil).Once()
	mockEmployees.On("Delete", ctx, personID).Return(nil).Once()

	handler := commands.NewDismissEmployeeCommandHandler(mockEmployees, mockAccounts, mockGuard)

	// Act & Assert
	require.NoError(t, handler.Handle(ctx, cmd))
	mockEmployees.AssertExpectations(t)
	mockGuard.AssertExpectations(t)
}

func TestDismissEmployeeCommandHandler_Handle_BlockedByAssignedParcel(t *testing.T) {
	// Arrange
	ctx := t.Context()
	personID := kernel.ID(7)
	cmd, err := commands.NewDismissEmployeeCommand(personID)
	require.NoError(t, err)

	mockEmployees := new(MockEmployeeRepository)
	mockAccounts := new(MockAccountRepository)
	mockGuard := new(MockIntegrityGuard)

	mockEmployees.On("Get", ctx, personID).Return(restoredManager(t, 7, 3), nil).Once()
	mockAccounts.On("Get", ctx, personID).Return(nil, kernelNotFound(7)).Once()
	mockGuard.On("Refers", ctx, ports.ParcelByDriver, personID).Return(true, nil).Once()

	handler := commands.NewDismissEmployeeCommandHandler(mockEmployees, mockAccounts, mockGuard)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectInUse)
	mockEmployees.AssertNotCalled(t, "Delete", ctx, personID)
	mockGuard.AssertExpectations(t)
}
