package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredClient(t *testing.T, personID int64) *party.Client {
	t.Helper()
	born := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	c, err := party.NewIndividualClient(kernel.ID(personID), "12345678900", born)
	require.NoError(t, err)
	return c
}

func restoredAddress(t *testing.T, id int64) *party.Address {
	t.Helper()
	a, err := party.RestoreAddress(kernel.ID(id), "01310-100", "SP", "Sao Paulo", "Bela Vista", "Av. Paulista", "1000", nil)
	require.NoError(t, err)
	return a
}

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func TestRegisterParcelCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	registeredAt := time.Date(2026, 8, 28, 10, 0, 0, 42000, time.UTC)
	clock := func() time.Time { return registeredAt }

	cmd, err := commands.NewRegisterParcelCommand(kernel.ID(1), kernel.ID(2), mustWeight(t, 12.5), parcel.Fragile, nil, nil)
	require.NoError(t, err)

	mockPeople := new(MockPersonRepository)
	mockClients := new(MockClientRepository)
	mockAddresses := new(MockAddressRepository)
	mockParcels := new(MockParcelRepository)

	mockClients.On("Get", ctx, kernel.ID(1)).Return(restoredClient(t, 1), nil).Once()
	mockPeople.On("Get", ctx, kernel.ID(2)).Return(restoredPerson(t, 2, 11), nil).Once()
	mockAddresses.On("Get", ctx, kernel.ID(11)).Return(restoredAddress(t, 11), nil).Once()
	mockParcels.On("AddSnapshot", ctx, mock.AnythingOfType("*parcel.TrackingSnapshot")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*parcel.TrackingSnapshot)
			assert.Equal(t, "Sao Paulo", s.City())
			require.NoError(t, s.AssignID(kernel.ID(9)))
		}).Return(nil).Once()
	mockParcels.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*parcel.Parcel)
			require.NoError(t, p.AssignID(kernel.ID(5)))
		}).Return(nil).Once()

	handler := commands.NewRegisterParcelCommandHandler(mockPeople, mockClients, new(MockEmployeeRepository), mockAddresses, mockParcels, clock)

	// Act
	registered, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), registered.ID())
	assert.Equal(t, kernel.ID(9), registered.SnapshotID())
	assert.Equal(t, parcel.Processing, registered.Status())
	assert.Equal(t, parcel.NewTrackingCode(registeredAt), registered.TrackingCode())
	mockParcels.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_SenderMustBeClient(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(kernel.ID(1), kernel.ID(2), mustWeight(t, 12.5), parcel.Common, nil, nil)
	require.NoError(t, err)

	mockClients := new(MockClientRepository)
	notFound := kernelNotFound(1)
	mockClients.On("Get", ctx, kernel.ID(1)).Return(nil, notFound).Once()

	handler := commands.NewRegisterParcelCommandHandler(new(MockPersonRepository), mockClients,
		new(MockEmployeeRepository), new(MockAddressRepository), new(MockParcelRepository), time.Now)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Equal(t, notFound, err)
}

func TestRegisterParcelCommandHandler_Handle_UndoesSnapshotWhenParcelInsertFails(t *testing.T) {
	// Arrange
	ctx := t.Context()
	clock := func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	cmd, err := commands.NewRegisterParcelCommand(kernel.ID(1), kernel.ID(2), mustWeight(t, 12.5), parcel.Common, nil, nil)
	require.NoError(t, err)

	insertErr := errors.New("insert failed")
	mockPeople := new(MockPersonRepository)
	mockClients := new(MockClientRepository)
	mockAddresses := new(MockAddressRepository)
	mockParcels := new(MockParcelRepository)

	mockClients.On("Get", ctx, kernel.ID(1)).Return(restoredClient(t, 1), nil).Once()
	mockPeople.On("Get", ctx, kernel.ID(2)).Return(restoredPerson(t, 2, 11), nil).Once()
	mockAddresses.On("Get", ctx, kernel.ID(11)).Return(restoredAddress(t, 11), nil).Once()
	mockParcels.On("AddSnapshot", ctx, mock.AnythingOfType("*parcel.TrackingSnapshot")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*parcel.TrackingSnapshot)
			require.NoError(t, s.AssignID(kernel.ID(9)))
		}).Return(nil).Once()
	mockParcels.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(insertErr).Once()
	// Compensation removes the snapshot that was just written.
	mockParcels.On("DeleteSnapshot", ctx, kernel.ID(9)).Return(nil).Once()

	handler := commands.NewRegisterParcelCommandHandler(mockPeople, mockClients, new(MockEmployeeRepository), mockAddresses, mockParcels, clock)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, insertErr)
	mockParcels.AssertExpectations(t)
}
