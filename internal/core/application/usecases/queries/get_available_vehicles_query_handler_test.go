package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailableVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableVehiclesQueryHandler
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&fleetrepo.VehicleDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableVehiclesQueryHandler(db)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE vehicles").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_ReturnsOnlyAvailableVehiclesOrderedByPlate() {
	suite.addVehicle("XYZ9A88", 8000, "Truck", fleet.Available)
	suite.addVehicle("ABC1D23", 1200, "Van", fleet.Available)
	suite.addVehicle("DEF4G56", 900, "Van", fleet.Unavailable)

	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("ABC1D23", result[0].Plate)
	suite.InDelta(1200.0, result[0].CapacityKG, 0.001)
	suite.Equal("Van", result[0].VehicleType)
	suite.Equal("XYZ9A88", result[1].Plate)
	suite.Equal("Truck", result[1].VehicleType)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableVehiclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailableVehiclesQuery constructor")
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) addVehicle(
	plateRaw string, capacityKG float64, vehicleType string, availability fleet.Availability,
) {
	plate, err := fleet.NewPlate(plateRaw)
	suite.Require().NoError(err)

	capacity, err := kernel.NewWeight(capacityKG)
	suite.Require().NoError(err)

	vehicle, err := fleet.NewVehicle(plate, capacity, vehicleType, availability)
	suite.Require().NoError(err)

	repo := fleetrepo.NewGormVehicleRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), vehicle))
}

func TestGetAvailableVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableVehiclesQueryHandlerTestSuite))
}
