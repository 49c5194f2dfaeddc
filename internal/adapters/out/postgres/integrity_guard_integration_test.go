package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/partyrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/staffrepo"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// IntegrityGuardIntegrationTestSuite verifies the EXISTS probes against a
// real schema. The schema carries no foreign keys, so these probes are the
// only thing standing between a delete and a dangling reference.
type IntegrityGuardIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	guard     *postgres.GormIntegrityGuard
}

func (suite *IntegrityGuardIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&partyrepo.AddressDTO{},
		&partyrepo.PersonDTO{},
		&staffrepo.EmployeeDTO{},
		&fleetrepo.VehicleDTO{},
		&parcelrepo.SnapshotDTO{},
		&parcelrepo.ParcelDTO{},
		&shipmentrepo.EntryDTO{},
		&accountrepo.AccountDTO{},
	))
}

func (suite *IntegrityGuardIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE addresses, people, employees, vehicles, tracking_snapshots, parcels, shipment_entries, accounts").Error
	suite.Require().NoError(err)
	suite.guard = postgres.NewGormIntegrityGuard(suite.db)
}

func (suite *IntegrityGuardIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_PersonByAddress() {
	ctx := context.Background()

	addressID := suite.addAddress()
	suite.addPerson(addressID)

	referenced, err := suite.guard.Refers(ctx, ports.PersonByAddress, addressID.Int64())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.PersonByAddress, addressID.Int64()+1)
	suite.Require().NoError(err)
	suite.False(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_EmployeeEdges() {
	ctx := context.Background()

	plate, err := fleet.NewPlate("ABC1D23")
	suite.Require().NoError(err)
	suite.addVehicle(plate)

	personID := kernel.ID(7)
	suite.addDriver(personID, plate)

	referenced, err := suite.guard.Refers(ctx, ports.EmployeeByPerson, personID.Int64())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.EmployeeByVehicle, plate.String())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.EmployeeByVehicle, "ZZZ9Z99")
	suite.Require().NoError(err)
	suite.False(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_ShipmentEntryEdges() {
	ctx := context.Background()

	plate, err := fleet.NewPlate("XYZ9A88")
	suite.Require().NoError(err)
	parcelID := kernel.ID(42)
	suite.addShipmentEntry(plate, parcelID)

	referenced, err := suite.guard.Refers(ctx, ports.ShipmentEntryByVehicle, plate.String())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.ShipmentEntryByParcel, parcelID.Int64())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.ShipmentEntryByParcel, int64(43))
	suite.Require().NoError(err)
	suite.False(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_AccountByPerson() {
	ctx := context.Background()

	personID := kernel.ID(11)
	suite.addAccount(personID)

	referenced, err := suite.guard.Refers(ctx, ports.AccountByPerson, personID.Int64())
	suite.Require().NoError(err)
	suite.True(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_ParcelByDriver() {
	ctx := context.Background()

	driverID := kernel.ID(7)
	suite.addParcelWithDriver(driverID)

	referenced, err := suite.guard.Refers(ctx, ports.ParcelByDriver, driverID.Int64())
	suite.Require().NoError(err)
	suite.True(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.ParcelByDriver, driverID.Int64()+1)
	suite.Require().NoError(err)
	suite.False(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_NullReferenceColumnsDoNotMatch() {
	ctx := context.Background()

	// An admin carries neither reference, leaving both columns NULL.
	suite.addAdmin(kernel.ID(13))

	referenced, err := suite.guard.Refers(ctx, ports.EmployeeByVehicle, "ABC1D23")
	suite.Require().NoError(err)
	suite.False(referenced)

	referenced, err = suite.guard.Refers(ctx, ports.EmployeeByHeadquarters, int64(1))
	suite.Require().NoError(err)
	suite.False(referenced)
}

func (suite *IntegrityGuardIntegrationTestSuite) TestRefers_UnknownDependency_ReturnsError() {
	ctx := context.Background()

	_, err := suite.guard.Refers(ctx, ports.Dependency(999), int64(1))
	suite.Require().Error(err)

	var invalidErr *errs.ValueIsInvalidError
	suite.Require().ErrorAs(err, &invalidErr)
}

func (suite *IntegrityGuardIntegrationTestSuite) addAddress() kernel.ID {
	address, err := party.NewAddress("04538-133", "SP", "Sao Paulo", "Itaim Bibi",
		"Av Faria Lima", "3477", nil)
	suite.Require().NoError(err)

	repo := partyrepo.NewGormAddressRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), address))
	return address.ID()
}

func (suite *IntegrityGuardIntegrationTestSuite) addPerson(addressID kernel.ID) {
	person, err := party.NewPerson("Ana Souza", nil, "+55 11 91234-5678",
		"ana@example.com", addressID)
	suite.Require().NoError(err)

	repo := partyrepo.NewGormPersonRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), person))
}

func (suite *IntegrityGuardIntegrationTestSuite) addVehicle(plate fleet.Plate) {
	capacity, err := kernel.NewWeight(1200)
	suite.Require().NoError(err)

	vehicle, err := fleet.NewVehicle(plate, capacity, "Van", fleet.Available)
	suite.Require().NoError(err)

	repo := fleetrepo.NewGormVehicleRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), vehicle))
}

func (suite *IntegrityGuardIntegrationTestSuite) addDriver(personID kernel.ID, plate fleet.Plate) {
	employee, err := staff.NewEmployee(personID, testCPF(personID), "Fleet", staff.Driver, &plate, nil)
	suite.Require().NoError(err)

	repo := staffrepo.NewGormEmployeeRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), employee))
}

func (suite *IntegrityGuardIntegrationTestSuite) addAdmin(personID kernel.ID) {
	employee, err := staff.NewEmployee(personID, testCPF(personID), "Back Office", staff.Admin, nil, nil)
	suite.Require().NoError(err)

	repo := staffrepo.NewGormEmployeeRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), employee))
}

// testCPF derives a distinct document per person so the unique index on
// employees.cpf never trips across fixtures.
func testCPF(personID kernel.ID) string {
	return fmt.Sprintf("%011d", personID.Int64())
}

func (suite *IntegrityGuardIntegrationTestSuite) addParcelWithDriver(driverID kernel.ID) {
	weight, err := kernel.NewWeight(2.5)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(10, 20, 30, weight, parcel.Common,
		time.Now().UTC().Truncate(time.Second), nil, &driverID)
	suite.Require().NoError(err)

	repo := parcelrepo.NewGormParcelRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), p))
}

func (suite *IntegrityGuardIntegrationTestSuite) addShipmentEntry(plate fleet.Plate, parcelID kernel.ID) {
	entry, err := shipment.NewEntry(plate, parcelID, time.Now().UTC().Truncate(time.Second))
	suite.Require().NoError(err)

	repo := shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.Require().NoError(repo.AddEntry(context.Background(), entry))
}

func (suite *IntegrityGuardIntegrationTestSuite) addAccount(personID kernel.ID) {
	acc, err := account.NewAccount(personID, "ana.souza", "$2a$10$abcdefghijklmnopqrstuv", account.ClientRole)
	suite.Require().NoError(err)

	repo := accountrepo.NewGormAccountRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), acc))
}

func TestIntegrityGuardIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrityGuardIntegrationTestSuite))
}
