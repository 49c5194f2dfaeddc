package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLoadCandidatesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLoadCandidatesQueryHandler
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&parcelrepo.SnapshotDTO{},
		&parcelrepo.ParcelDTO{},
		&shipmentrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLoadCandidatesQueryHandler(db)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_snapshots, shipment_entries").Error
	suite.Require().NoError(err)
}

// candidatesQuery builds a query for the standard test event.
func (suite *GetLoadCandidatesQueryHandlerTestSuite) candidatesQuery(loadedAt time.Time) queries.GetLoadCandidatesQuery {
	plate, err := fleet.NewPlate("ABC1D23")
	suite.Require().NoError(err)

	query, err := queries.NewGetLoadCandidatesQuery(plate, loadedAt)
	suite.Require().NoError(err)
	return query
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := suite.candidatesQuery(time.Now().UTC())

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_ReturnsOldestRegistrationsFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	newest := suite.addParcel(parcel.Processing, base)
	oldest := suite.addParcel(parcel.AwaitingPickup, base.Add(-48*time.Hour))
	middle := suite.addParcel(parcel.Processing, base.Add(-24*time.Hour))

	query := suite.candidatesQuery(base)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(oldest.ID().Int64(), result[0].ID)
	suite.Equal(middle.ID().Int64(), result[1].ID)
	suite.Equal(newest.ID().Int64(), result[2].ID)
	suite.Equal(oldest.TrackingCode().String(), result[0].TrackingCode)
	suite.Equal("AwaitingPickup", result[0].Status)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_ExcludesFinalAndInTransitStatuses() {
	base := time.Now().UTC().Truncate(time.Second)
	eligible := suite.addParcel(parcel.AwaitingPickup, base)
	suite.addParcelWithStatus(parcel.InTransit, base.Add(time.Second))
	suite.addParcelWithStatus(parcel.Delivered, base.Add(2*time.Second))
	suite.addParcelWithStatus(parcel.Cancelled, base.Add(3*time.Second))

	query := suite.candidatesQuery(base)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(eligible.ID().Int64(), result[0].ID)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_ExcludesParcelsAlreadyInSameEvent() {
	base := time.Now().UTC().Truncate(time.Second)
	loadedAt := base.Add(2 * time.Hour)
	loaded := suite.addParcel(parcel.AwaitingPickup, base)
	free := suite.addParcel(parcel.AwaitingPickup, base.Add(time.Hour))

	plate, err := fleet.NewPlate("ABC1D23")
	suite.Require().NoError(err)
	entry, err := shipment.NewEntry(plate, loaded.ID(), loadedAt)
	suite.Require().NoError(err)

	shipments := shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.Require().NoError(shipments.AddEntry(context.Background(), entry))

	query := suite.candidatesQuery(loadedAt)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(free.ID().Int64(), result[0].ID)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_ParcelInOtherEventStaysEligible() {
	base := time.Now().UTC().Truncate(time.Second)
	yesterday := suite.addParcel(parcel.AwaitingPickup, base)

	// The parcel sits in yesterday's event on the same vehicle, and in an
	// event of a different vehicle; neither blocks today's event.
	plateA, err := fleet.NewPlate("ABC1D23")
	suite.Require().NoError(err)
	plateB, err := fleet.NewPlate("XYZ9A88")
	suite.Require().NoError(err)

	shipments := shipmentrepo.NewGormShipmentRepository(suite.db)
	for _, plate := range []fleet.Plate{plateA, plateB} {
		entry, entryErr := shipment.NewEntry(plate, yesterday.ID(), base.Add(-24*time.Hour))
		suite.Require().NoError(entryErr)
		suite.Require().NoError(shipments.AddEntry(context.Background(), entry))
	}

	query := suite.candidatesQuery(base.Add(2 * time.Hour))

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(yesterday.ID().Int64(), result[0].ID)
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLoadCandidatesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetLoadCandidatesQuery constructor")
}

// addParcel persists a new parcel and forces the given status.
func (suite *GetLoadCandidatesQueryHandlerTestSuite) addParcel(status parcel.Status, registeredAt time.Time) *parcel.Parcel {
	weight, err := kernel.NewWeight(3.2)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(10, 20, 30, weight, parcel.Common, registeredAt, nil, nil)
	suite.Require().NoError(err)

	if status != parcel.Processing {
		suite.Require().NoError(p.ChangeStatus(status, parcel.Permissive))
	}

	repo := parcelrepo.NewGormParcelRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func (suite *GetLoadCandidatesQueryHandlerTestSuite) addParcelWithStatus(status parcel.Status, registeredAt time.Time) {
	suite.addParcel(status, registeredAt)
}

func TestGetLoadCandidatesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLoadCandidatesQueryHandlerTestSuite))
}
