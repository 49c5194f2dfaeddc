package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func kernelNotFound(id int64) error {
	return errs.NewObjectNotFoundError("id", id)
}

// Mock implementations for testing.

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Add(ctx context.Context, a *party.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, a *party.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.ID) (*party.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Address), args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Add(ctx context.Context, p *party.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) Update(ctx context.Context, p *party.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) Get(ctx context.Context, id kernel.ID) (*party.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Person), args.Error(1)
}

func (m *MockPersonRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, c *party.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, personID kernel.ID) (*party.Client, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, personID kernel.ID) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Add(ctx context.Context, e *staff.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *staff.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, personID kernel.ID) (*staff.Employee, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, personID kernel.ID) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, plate fleet.Plate) (*fleet.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, plate fleet.Plate) error {
	args := m.Called(ctx, plate)
	return args.Error(0)
}

type MockHeadquartersRepository struct {
	mock.Mock
}

func (m *MockHeadquartersRepository) Add(ctx context.Context, h *depot.Headquarters) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHeadquartersRepository) Update(ctx context.Context, h *depot.Headquarters) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHeadquartersRepository) Get(ctx context.Context, id kernel.ID) (*depot.Headquarters, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*depot.Headquarters), args.Error(1)
}

func (m *MockHeadquartersRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParcelRepository) AddSnapshot(ctx context.Context, s *parcel.TrackingSnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockParcelRepository) GetSnapshot(ctx context.Context, id kernel.ID) (*parcel.TrackingSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.TrackingSnapshot), args.Error(1)
}

func (m *MockParcelRepository) DeleteSnapshot(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) AddEntry(ctx context.Context, e *shipment.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetEventEntries(ctx context.Context, plate fleet.Plate, loadedAt time.Time) ([]*shipment.Entry, error) {
	args := m.Called(ctx, plate, loadedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Entry), args.Error(1)
}

func (m *MockShipmentRepository) RemoveEntry(ctx context.Context, plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) error {
	args := m.Called(ctx, plate, parcelID, loadedAt)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteEvent(ctx context.Context, plate fleet.Plate, loadedAt time.Time) error {
	args := m.Called(ctx, plate, loadedAt)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, personID kernel.ID) (*account.Account, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, personID kernel.ID) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

type MockIntegrityGuard struct {
	mock.Mock
}

func (m *MockIntegrityGuard) Refers(ctx context.Context, dep ports.Dependency, key any) (bool, error) {
	args := m.Called(ctx, dep, key)
	return args.Bool(0), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, plain string) bool {
	args := m.Called(hash, plain)
	return args.Bool(0)
}
